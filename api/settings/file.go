package settings

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// FileStore keeps settings in a dotenv-format file next to the CSV sheet,
// playing the role of a settings tab beside the customer rows.
type FileStore struct {
	path string
}

func NewFileStore(path string) FileStore { return FileStore{path: path} }

func (f FileStore) GetSetting(name string) (string, bool) {
	values, err := godotenv.Read(f.path)
	if err != nil {
		return "", false
	}
	value, ok := values[name]
	return value, ok
}

func (f FileStore) SetSetting(name, value string) error {
	values, err := godotenv.Read(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("settings: reading %s: %w", f.path, err)
		}
		values = map[string]string{}
	}
	values[name] = value
	if err := godotenv.Write(values, f.path); err != nil {
		return fmt.Errorf("settings: writing %s: %w", f.path, err)
	}
	return nil
}
