// Package config loads process configuration from the environment.
//
// Variables are read from an optional .env file (github.com/joho/godotenv)
// and the process environment, then mapped onto struct tags with
// github.com/caarlos0/env/v11. Package-level configs such as smtp.Config and
// contact.Config are embedded as-is.
//
// A missing MAIL_TO is not a load error: the server starts and every
// contact submission fails with a configuration error instead.
package config
