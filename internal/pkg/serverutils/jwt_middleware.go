package serverutils

import (
	"os"

	"entity-notes-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const actorLocalKey = "actor"

// JwtMiddleware authenticates the request and stores the resolved Actor in
// locals. Claims: user_id (uuid), roles ([]string), is_admin (bool).
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	userIdStr, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	actor := entity.Actor{Id: userId}
	if isAdmin, ok := claims["is_admin"].(bool); ok {
		actor.IsAdmin = isAdmin
	}
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				actor.Roles = append(actor.Roles, role)
			}
		}
	}

	ctx.Locals(actorLocalKey, actor)
	return ctx.Next()
}

// ActorFromLocals returns the authenticated actor, or false when the request
// carried none (routes outside JwtMiddleware).
func ActorFromLocals(ctx *fiber.Ctx) (entity.Actor, bool) {
	actor, ok := ctx.Locals(actorLocalKey).(entity.Actor)
	return actor, ok
}
