package data

import (
	_ "embed"
)

//go:embed countries.json
var Countries []byte
