// Starfan-term runs the animated fan in a terminal. Click the round button
// or press space to toggle the fan; q, Esc or Ctrl-C quits.
package main

import (
	"log"

	"github.com/phanxgames/starfan/termhost"
)

func main() {
	cfg, err := termhost.LoadRunConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := termhost.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
