// SPDX-License-Identifier: MIT

// skillcheck reads a request envelope JSON document on stdin, routes it
// through a small demonstration skill, and writes the response envelope JSON
// to stdout. It is a fixture runner for eyeballing the full
// decode→dispatch→encode path; it performs no network I/O.
//
// Usage:
//
//	skillcheck < testdata/launch.json
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jct-tympanon/alexa-go/internal/log"
	"github.com/jct-tympanon/alexa-go/request"
	"github.com/jct-tympanon/alexa-go/response"
	"github.com/jct-tympanon/alexa-go/skill"
)

func main() {
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log.Configure(log.Config{Level: *level, Service: "skillcheck"})
	logger := log.WithComponent("skillcheck")

	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Fatal().Err(err).Msg("read stdin")
	}

	out, err := demoMux().Invoke(context.Background(), body)
	if err != nil {
		logger.Fatal().Err(err).Msg("invoke failed")
	}

	fmt.Println(string(out))
}

// demoMux wires the handlers from the classic hello-world skill.
func demoMux() *skill.Mux {
	hello := func(_ context.Context, env *request.RequestEnvelope) (*response.ResponseEnvelope, error) {
		if name, ok := env.SlotValue("name"); ok {
			return response.Simple("hello", "hello "+name), nil
		}
		switch lang, region, _ := env.Locale().Parts(); {
		case lang == request.LanguageEnglish && region == request.RegionAustralia:
			return response.Simple("hello", "G'day mate"), nil
		case lang == request.LanguageGerman:
			return response.Simple("hello", "Hallo Welt"), nil
		case lang == request.LanguageJapanese:
			return response.Simple("hello", "こんにちは世界"), nil
		}
		return response.Simple("hello", "hello world"), nil
	}

	help := func(context.Context, *request.RequestEnvelope) (*response.ResponseEnvelope, error) {
		return response.Simple("hello", "to say hello, tell me: say hello to someone"), nil
	}

	return skill.NewMux().
		Launch(hello).
		Intent(request.IntentHelp, help).
		Fallback(hello)
}
