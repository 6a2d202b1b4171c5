package invoice

// termsTitle and termsText make up page two of every invoice. The wording is
// the venue's contract text and must not be reflowed or reworded in code.
const termsTitle = "Términos y Condiciones – Salón de Actividades"

const termsText = `1. Reservación y Pago

La reservación se garantiza con un depósito del 20% del monto total del evento. El balance restante deberá ser pagado en su totalidad a más tardar 1 día antes de la fecha del evento. Todos los pagos realizados son no reembolsables.

2. Cambios de Fecha

Los cambios de fecha están sujetos a disponibilidad. Solo se permitirán cambios solicitados con al menos 5 días de anticipación.

3. Cancelaciones

Las cancelaciones deben realizarse por escrito. Pagos no reembolsables y no transferibles a otras fechas o servicios, salvo disposición a situación emergencia ya sea muerte o catástrofe natural.

4. Duración del Evento

El cliente dispone del salón por un máximo de 5 horas. Horas adicionales tendrán un costo extra por hora. El horario debe respetarse estrictamente.

5. Decoración y Montaje

No se permite clavar, pegar o perforar paredes, techos o mobiliario. El cliente es responsable de retirar decoraciones al finalizar el evento.

6. Catering y Bebidas

El salón ofrece servicio de alimentos y bebidas, por lo tanto, queda prohibido introducir servicios externos de ninguna índole. Puede aplicarse cargo si lleva bebidas o comida externa eso incluye, candy bar, mesas de postres, charcuterías. Botellas de vinos o champagne tendrán un cargo por descorche según la marca.

7. Seguridad y Daños

El cliente será responsable por cualquier daño causado al salón, mobiliario o equipo durante el evento. El salón se reserva el derecho de exigir depósito de seguridad reembolsable para cubrir daños.

8. Conducta y Normas

El cliente y sus invitados deben comportarse de manera adecuada. El salón se reserva el derecho de terminar el evento en cualquier momento, en caso de conducta inapropiada o incumplimiento de normas.

9. Fuerza Mayor

El restaurante no se hace responsable por cancelaciones debidas a eventos fuera de nuestro control (clima severo, fallas eléctricas externas, desastres naturales, emergencias gubernamentales, etc.). Se ofrecerán alternativas razonables según disponibilidad.

10. Firma y Aceptación

El cliente reconoce haber leído y aceptado estos términos y condiciones al firmar el contrato de reservación.

11. Confeti y Pirotecnia

Queda estrictamente prohibido el uso de confeti, serpentinas, pirotecnia, fuegos artificiales o cualquier material similar dentro o fuera del salón. El uso de estos elementos puede causar daños al salón, representar un riesgo de seguridad y generar costos adicionales de limpieza. El cliente será responsable de cualquier daño o costo adicional resultante del uso no autorizado de estos materiales. En caso de incumplimiento, el salón se reserva el derecho de aplicar cargos adicionales y/o terminar el evento inmediatamente.`
