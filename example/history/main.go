// Package main demonstrates history navigation with file persistence.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/promptkit/ask"
)

func main() {
	fmt.Println("History Example with File Persistence")
	fmt.Println("Use Up/Down arrow keys to navigate history")
	fmt.Println("Type 'exit' to exit; Ctrl+D on an empty line also exits")
	fmt.Println()

	// History is loaded from the file if it exists and saved on Close.
	// Paths may be absolute, ~-prefixed, or relative.
	history, err := ask.WithFileHistory("~/.ask_example_history", 1000)
	if err != nil {
		log.Fatal(err)
	}

	p, err := ask.New("history> ", history, ask.WithEOT(true))
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	for {
		result, err := p.Ask()
		if err != nil {
			if errors.Is(err, ask.ErrInterrupted) {
				fmt.Println("Goodbye!")
				return
			}
			log.Printf("Error: %v\n", err)
			continue
		}

		result = strings.TrimSpace(result)
		if result == "" {
			continue
		}
		if result == "exit" {
			fmt.Println("Goodbye!")
			return
		}

		fmt.Printf("Executed: %s\n", result)
	}
}
