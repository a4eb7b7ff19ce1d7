package main

import (
	"log"

	"github.com/humanbelnik/flowquest/core/internal/service/tile_printer"
	"github.com/spf13/cobra"
)

const releaseVersion = "1.0.0"

func main() {
	log.SetFlags(0)
	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

func printBoard(cmd *cobra.Command, cfg *Config) error {
	files, err := tile_printer.WriteBoard(cfg.out, cfg.size)
	if err != nil {
		return err
	}
	if cfg.verbose {
		for _, f := range files {
			cmd.Println(f)
		}
	}
	cmd.Printf("wrote %d files to %s\n", len(files), cfg.out)
	return nil
}
