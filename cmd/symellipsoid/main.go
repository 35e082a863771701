package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/symellipsoid/internal/maskgen"
)

func main() {
	maskgen.Debug = os.Getenv("DEBUG") != ""
	maskgen.PNG = os.Getenv("PNG") != ""
	maskgen.RAW = os.Getenv("RAW") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "configs/config.yaml"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := maskgen.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
