package settings

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Properties is the durable key/value file the Stripe credential is promoted
// into, the local counterpart of script properties. It survives edits to the
// settings store.
type Properties struct {
	path string
}

func NewProperties(path string) Properties { return Properties{path: path} }

func (p Properties) Get(name string) (string, bool) {
	values, err := godotenv.Read(p.path)
	if err != nil {
		return "", false
	}
	value, ok := values[name]
	return value, ok
}

func (p Properties) Set(name, value string) error {
	values, err := godotenv.Read(p.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("properties: reading %s: %w", p.path, err)
		}
		values = map[string]string{}
	}
	values[name] = value
	if err := godotenv.Write(values, p.path); err != nil {
		return fmt.Errorf("properties: writing %s: %w", p.path, err)
	}
	return nil
}
