package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/ilya-klyuchnikov/caramel/ast/erlang"
	"github.com/ilya-klyuchnikov/caramel/processors"
)

func main() {
	out := flag.String("out", env.Str("CARAMEL_OUT", ""), "output file path (stdout if empty)")
	flag.Parse()

	if len(flag.Args()) == 0 {
		log.Fatal("no input module, run as `caramel <module.json>`")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	module, err := erlang.DecodeModule(data)
	if err != nil {
		log.Fatal(err)
	}

	translated, err := processors.Translate(module)
	if err != nil {
		log.Fatal(err)
	}

	output := translated.String() + "\n"
	if *out == "" {
		fmt.Print(output)
	} else if err := os.WriteFile(*out, []byte(output), 0644); err != nil {
		log.Fatal(err)
	}
}
