package config

import (
	"os"
	"path/filepath"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Paths struct {
	DataDir *string
}

func (p *Paths) setDefaults() {
	p.DataDir = gosettings.DefaultPointer(p.DataDir, DefaultDataDir())
}

// DefaultDataDir returns the data directory next to the program
// executable, falling back on ./data if the executable path
// cannot be found.
func DefaultDataDir() string {
	executablePath, err := os.Executable()
	if err != nil {
		return "./data"
	}
	return filepath.Join(filepath.Dir(executablePath), "data")
}

func (p Paths) Validate() (err error) {
	return nil
}

func (p Paths) String() string {
	return p.toLinesNode().String()
}

func (p Paths) toLinesNode() *gotree.Node {
	node := gotree.New("Paths")
	node.Appendf("Data directory: %s", *p.DataDir)
	return node
}

// LogFile returns the path of the rotated log file.
func (p Paths) LogFile() string {
	return filepath.Join(*p.DataDir, "logs", "cfddns.log")
}

func (p *Paths) read(r *reader.Reader) {
	p.DataDir = r.Get("DATADIR", reader.ForceLowercase(false))
}
