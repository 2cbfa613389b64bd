// Package validator wires go-playground/validator into Echo and registers
// the request validation rules the handlers rely on.
package validator

import (
	"net/http"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	passwordMinLen = 6
	passwordMaxLen = 20
)

// passwordSymbols is the accepted symbol set for account passwords.
const passwordSymbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?~`"

var releaseDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// gameGenres lists the genre labels accepted on game payloads.
var gameGenres = []string{
	"ACTION",
	"RPG",
	"STRATEGY",
	"INDIE",
	"PLATFORMER",
	"ADVENTURE",
	"FIGHTING",
	"SHOOTER",
	"SIMULATION",
	"CASUAL",
	"MASSIVELY MULTIPLAYER",
}

// gamePlatforms lists the platform labels accepted on game payloads.
var gamePlatforms = []string{
	"PC",
	"XBOX SERIES S/X",
	"GAME BOY ADVANCE",
	"WEB",
	"PLAYSTATION 3",
	"PLAYSTATION 4",
	"XBOX",
	"PLAYSTATION 2",
	"MACOS",
	"LINUX",
	"NINTENDO SWITCH",
	"IOS",
	"ANDROID",
	"NES",
	"PLAYSTATION 5",
	"XBOX ONE",
	"WII",
	"NINTENDO DS",
	"XBOX 360",
	"WII U",
	"GAMECUBE",
}

// EchoValidator adapts a validator.Validate instance to echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New builds the validator with all custom rules registered.
func New() *EchoValidator {
	v := validator.New()

	// Registration errors only occur for blank tags or nil funcs, neither of
	// which can happen with the literals below.
	_ = v.RegisterValidation("accountpassword", validAccountPassword)
	_ = v.RegisterValidation("releasedate", validReleaseDate)
	_ = v.RegisterValidation("gamegenre", validGameGenre)
	_ = v.RegisterValidation("gameplatform", validGamePlatform)

	return &EchoValidator{validate: v}
}

// Validate implements echo.Validator.
func (ev *EchoValidator) Validate(i any) error {
	if err := ev.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

// validAccountPassword enforces the password policy: 6 to 20 characters with
// at least one uppercase letter and at least one symbol.
func validAccountPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return false
	}

	hasUpper := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
			break
		}
	}

	return hasUpper && strings.ContainsAny(password, passwordSymbols)
}

// validReleaseDate accepts dates in YYYY-MM-DD form.
func validReleaseDate(fl validator.FieldLevel) bool {
	return releaseDatePattern.MatchString(fl.Field().String())
}

func validGameGenre(fl validator.FieldLevel) bool {
	return slices.Contains(gameGenres, fl.Field().String())
}

func validGamePlatform(fl validator.FieldLevel) bool {
	return slices.Contains(gamePlatforms, fl.Field().String())
}
