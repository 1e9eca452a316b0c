package auth

import (
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
	"github.com/Jaspa-lSingh/Shiftwise/internal/auth"
	"github.com/Jaspa-lSingh/Shiftwise/internal/commands"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/user"
)

type Controller struct {
	user           User
	session        Session
	privateKeyFile string
}

func NewController(user User, session Session, privateKeyFile string) *Controller {
	return &Controller{user: user, session: session, privateKeyFile: privateKeyFile}
}

func (uc Controller) SignIn(c *web.Context) error {
	var data user.SignInRequest

	err := c.BindFunc(&data, "Email", "Password")
	if err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetByEmail(c.Ctx, data.Email)
	if err != nil {
		return c.RespondError(err)
	}

	if detail.Password == nil || detail.Role == nil {
		return c.RespondError(&web.Error{
			Err:    errors.New("employee not found"),
			Status: http.StatusUnauthorized,
		})
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("incorrect email or password"), http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := commands.GenToken(auth.TokenParams{
		ID:   detail.ID,
		Role: *detail.Role,
	}, uc.privateKeyFile)
	if err != nil {
		return c.RespondError(err)
	}

	if err = uc.session.SetRefreshToken(c.Ctx, *detail.Role, detail.ID, refreshToken, commands.RefreshTokenTTL); err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "storing session"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]interface{}{
			"access":  accessToken,
			"refresh": refreshToken,
			"role":    *detail.Role,
			"user_id": detail.ID,
		},
		"error": nil,
	}, http.StatusOK)
}

func (uc Controller) RefreshToken(c *web.Context) error {
	var data user.RefreshTokenRequest

	err := c.BindFunc(&data, "AccessToken", "RefreshToken")
	if err != nil {
		return c.RespondError(err)
	}

	_, refreshTokenClaims, err := commands.VerifyTokens(data.AccessToken, data.RefreshToken, uc.privateKeyFile)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	// The presented refresh token must be the one the session holds.
	stored, err := uc.session.RefreshToken(c.Ctx, refreshTokenClaims.Role, refreshTokenClaims.UserId)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.New("session expired, sign in again"), http.StatusUnauthorized))
	}
	if stored != data.RefreshToken {
		return c.RespondError(web.NewRequestError(errors.New("refresh token has been revoked"), http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := commands.GenToken(auth.TokenParams{
		ID:   refreshTokenClaims.UserId,
		Role: refreshTokenClaims.Role,
	}, uc.privateKeyFile)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating new tokens"), http.StatusInternalServerError))
	}

	if err = uc.session.SetRefreshToken(c.Ctx, refreshTokenClaims.Role, refreshTokenClaims.UserId, refreshToken, commands.RefreshTokenTTL); err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "rotating session"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access":  accessToken,
			"refresh": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

func (uc Controller) Logout(c *web.Context) error {
	claims, err := auth.GetClaims(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	if err = uc.session.Clear(c.Ctx, claims.Role, claims.UserId); err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "clearing session"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"data":   "logged out",
		"status": true,
	}, http.StatusOK)
}
