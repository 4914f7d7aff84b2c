// Package main demonstrates basic usage of the ask library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/promptkit/ask"
)

func main() {
	// Create a simple prompt with default settings
	p, err := ask.New(">>> ", ask.WithDefault("help"))
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	fmt.Println("Basic Prompt Example")
	fmt.Println("Press Enter on an empty line to get the default ('help')")
	fmt.Println("Type 'exit' or press Ctrl+C to exit")
	fmt.Println()

	for {
		// Ask blocks until the user submits a line
		result, err := p.Ask()
		if err != nil {
			if errors.Is(err, ask.ErrInterrupted) {
				fmt.Println("Goodbye!")
				break
			}
			log.Printf("Error: %v\n", err)
			continue
		}

		if result == "exit" {
			fmt.Println("Goodbye!")
			break
		}

		// Echo the input back
		fmt.Printf("You typed: %s\n", result)
	}
}
