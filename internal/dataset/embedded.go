package dataset

import (
	"context"
	_ "embed"
)

//go:embed data/historical.json
var embeddedJSON []byte

// Embedded returns a loader serving the dataset bundled into the binary.
func Embedded() Loader {
	return embeddedLoader{}
}

type embeddedLoader struct{}

func (embeddedLoader) Load(_ context.Context) (*Dataset, error) {
	return Parse(embeddedJSON)
}
