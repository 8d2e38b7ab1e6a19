package web

// Config holds the page settings read from the environment.
type Config struct {
	DefaultText string `env:"QR_DEFAULT_TEXT" envDefault:"Hello from QR frontend"`
	DefaultLang string `env:"I18N_DEFAULT_LANG" envDefault:"en"`
}
