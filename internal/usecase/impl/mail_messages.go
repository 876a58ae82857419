package impl

import (
	"context"
	"fmt"

	deliverycontext "homesec/internal/delivery/context"
	"homesec/internal/domain/service"
)

const (
	welcomeSubject   = "Bienvenido a tu Sistema de Seguridad Hogar"
	welcomeCategory  = "Bienvenida Cliente"
	recoverySubject  = "Recuperación de contraseña"
	recoveryCategory = "Recuperacion Contraseña"
)

func welcomeMessage(ctx context.Context, email, temporaryPassword string) *service.MailMessage {
	return &service.MailMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		To:        email,
		Subject:   welcomeSubject,
		Category:  welcomeCategory,
		Text: fmt.Sprintf(`Bienvenido a tu Sistema de Seguridad Hogar,

Se ha creado tu cuenta con éxito.

Tus credenciales de acceso son:
Correo electrónico: %s
Contraseña temporal: %s

Por seguridad, te recomendamos cambiar tu contraseña al iniciar sesión por primera vez.

Saludos cordiales,
Equipo de SKYZO
`, email, temporaryPassword),
	}
}

func recoveryMessage(ctx context.Context, email, temporaryPassword string) *service.MailMessage {
	return &service.MailMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		To:        email,
		Subject:   recoverySubject,
		Category:  recoveryCategory,
		Text: fmt.Sprintf(`Hola,

Se ha solicitado la recuperación de tu contraseña.

Tu nueva contraseña temporal es:
%s

Por seguridad, te recomendamos cambiar tu contraseña al iniciar sesión.

Saludos cordiales,
Equipo de SKYZO
`, temporaryPassword),
	}
}
