package params

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/qdm12/cfddns/internal/models"
)

const (
	tomlFilename   = "config.toml"
	jsonFilename   = "config.json"
	dotEnvFilename = ".env"
)

type Reader struct {
	warner   Warner
	readFile func(filename string) ([]byte, error)
}

func NewReader(warner Warner) *Reader {
	return &Reader{
		warner:   warner,
		readFile: os.ReadFile,
	}
}

var (
	ErrConfigFileNotFound = errors.New("config.toml or config.json not found")
	ErrDecodeDocument     = errors.New("decoding document")
	ErrNoRecord           = errors.New("no DNS record configured")
)

// Read reads the config.toml file in the data directory given,
// or the config.json file if config.toml does not exist.
// It returns the document read and the records it contains,
// validated and converted.
func (r *Reader) Read(dataDir string) (document Document,
	records []models.Record, err error) {
	path, data, err := r.readConfigFile(dataDir)
	if err != nil {
		return document, nil, err
	}

	switch filepath.Base(path) {
	case tomlFilename:
		err = decodeTOML(data, &document)
	default:
		err = decodeJSON(data, &document)
	}
	if err != nil {
		return document, nil, fmt.Errorf("%w: %s: %w", ErrDecodeDocument, path, err)
	}

	if document.MultiThread == nil && document.MutliThread != nil {
		r.warner.Warnf("%s: key mutli_thread is deprecated, please use multi_thread instead", path)
	}

	if len(document.Records) == 0 {
		return document, nil, fmt.Errorf("%w: in %s", ErrNoRecord, path)
	}

	records = make([]models.Record, len(document.Records))
	for i, fields := range document.Records {
		records[i], err = fields.toRecord()
		if err != nil {
			return document, nil, fmt.Errorf("%s: record %d of %d: %w",
				path, i+1, len(document.Records), err)
		}
	}

	return document, records, nil
}

func (r *Reader) readConfigFile(dataDir string) (path string, data []byte, err error) {
	for _, filename := range []string{tomlFilename, jsonFilename} {
		path = filepath.Join(dataDir, filename)
		data, err = r.readFile(path)
		switch {
		case err == nil:
			return path, data, nil
		case errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return "", nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return "", nil, fmt.Errorf("%w: in %s", ErrConfigFileNotFound, dataDir)
}

func decodeTOML(data []byte, document *Document) (err error) {
	err = toml.Unmarshal(data, document)
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, column := decodeErr.Position()
		return fmt.Errorf("line %d column %d: %w", row, column, err)
	}
	return err
}

func decodeJSON(data []byte, document *Document) (err error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	return decoder.Decode(document)
}

// LoadDotEnv sets environment variables from the .env file
// in the data directory, if it exists. Variables already set
// in the environment are not overridden.
func LoadDotEnv(dataDir string) (err error) {
	path := filepath.Join(dataDir, dotEnvFilename)
	err = godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
