package config

import (
	"fmt"
	"os"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

// Server is the local control server settings.
type Server struct {
	Enabled          *bool
	ListeningAddress string
}

func (s *Server) setDefaults() {
	s.Enabled = gosettings.DefaultPointer(s.Enabled, false)
	s.ListeningAddress = gosettings.DefaultComparable(s.ListeningAddress, "127.0.0.1:8000")
}

func (s Server) Validate() (err error) {
	if !*s.Enabled {
		return nil
	}

	err = validate.ListeningAddress(s.ListeningAddress, os.Getuid())
	if err != nil {
		return fmt.Errorf("listening address: %w", err)
	}

	return nil
}

func (s Server) String() string {
	return s.toLinesNode().String()
}

func (s Server) toLinesNode() *gotree.Node {
	if !*s.Enabled {
		return gotree.New("Control server: disabled")
	}
	node := gotree.New("Control server")
	node.Appendf("Listening address: %s", s.ListeningAddress)
	return node
}

func (s *Server) read(reader *reader.Reader, warner Warner) (err error) {
	s.Enabled, err = reader.BoolPtr("SERVER_ENABLED")
	if err != nil {
		return err
	}

	// Retro-compatibility
	port, err := reader.Uint16Ptr("LISTENING_PORT")
	if err != nil {
		return err
	} else if port != nil {
		handleDeprecated(warner, "LISTENING_PORT", "LISTENING_ADDRESS")
		s.ListeningAddress = fmt.Sprintf("127.0.0.1:%d", *port)
	}

	address := reader.String("LISTENING_ADDRESS")
	if address != "" {
		s.ListeningAddress = address
	}

	return nil
}
