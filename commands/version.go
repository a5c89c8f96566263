package commands

import (
	"fmt"
)

const VERSION = "v0.1.0"

// Version prints the current version in the format v<major>.<minor>.<build>.
func Version() {
	fmt.Printf("%s %s\n", APP, VERSION)
}
