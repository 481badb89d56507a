// coinhop is a single-screen platformer: run, jump, bump blocks, grab coins
// and stomp enemies.
//
// Usage:
//
//	coinhop                 - Open the game window
//	coinhop sim             - Run the simulation headless with scripted input
//	coinhop config          - Print the effective configuration as YAML
//	coinhop levels          - List the embedded levels
//
// Global flags:
//
//	--config <path>     - Config YAML (default: ~/.coinhop/coinhop.yaml, then ./configs/coinhop.yaml)
//	--level <name|path> - Embedded level name, "default", or a .tmx file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
