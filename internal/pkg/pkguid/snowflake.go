package pkguid

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates time-ordered IDs using the Snowflake algorithm.
type Snowflake struct {
	node *snowflake.Node
}

func generateRandomNodeID() (int64, error) {
	var nodeID int64
	err := binary.Read(rand.Reader, binary.BigEndian, &nodeID)
	if err != nil {
		return 0, err
	}

	return nodeID & (1<<10 - 1), nil // node IDs are 10 bits
}

// NewSnowflake constructs a Snowflake generator with a random node ID.
func NewSnowflake() (*Snowflake, error) {
	nodeID, err := generateRandomNodeID()
	if err != nil {
		return nil, err
	}

	snowflake.Epoch = 1755216000000 // Fri Aug 15 2025 00:00:00 UTC

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new ID in its base-10 form, so the generator can be used
// wherever a StringID is expected.
func (s *Snowflake) Generate() string {
	return s.node.Generate().String()
}

// GenerateInt returns a new ID as a number.
func (s *Snowflake) GenerateInt() int64 {
	return s.node.Generate().Int64()
}
