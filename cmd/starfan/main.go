// Starfan opens a window with the animated fan. Click the round button (or
// press space) to switch the fan on and off. Settings come from STARFAN_*
// environment variables; see ebitenhost.RunConfig.
package main

import (
	"log"

	"github.com/phanxgames/starfan/ebitenhost"
)

func main() {
	cfg, err := ebitenhost.LoadRunConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := ebitenhost.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
