package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/jrnl/pkg/store"
)

func loadStore() (store.Persistence, error) {
	cfg, err := store.LoadConfig(co.Path)
	if err != nil {
		return nil, err
	}
	if cfg.DisableColors {
		color.NoColor = true
	}
	return store.Load(cfg)
}

// confirm builds a stdin y/N prompt for the given verb phrase.
func confirm(verb string) func(key string) bool {
	return func(key string) bool {
		fmt.Printf("%s %s? (y/N) ", verb, key)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}
