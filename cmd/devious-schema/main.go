package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ryn-cx/devious-schema/pkg/orchestrator"
	"github.com/ryn-cx/devious-schema/pkg/sample"
)

// fileConfig mirrors the flag set so defaults can live in a YAML file. Flags
// and environment variables take precedence over the config file.
type fileConfig struct {
	Files    []string `yaml:"files"`
	Folder   string   `yaml:"folder"`
	RootName string   `yaml:"root_name"`
	Output   string   `yaml:"output"`
	Renderer string   `yaml:"renderer"`
}

func main() {
	// Missing .env files are fine; explicit environment wins either way.
	_ = godotenv.Load()

	files := flag.String("files", envDefault("FILES", ""), "comma-separated sample files (JSON or YAML)")
	folder := flag.String("folder", envDefault("FOLDER", ""), "folder of sample files")
	rootName := flag.String("root-name", envDefault("ROOT_NAME", ""), "name for the root model")
	output := flag.String("output", envDefault("OUTPUT", ""), "output file (stdout if empty)")
	renderer := flag.String("renderer", envDefault("RENDERER", ""), "renderer to use (pydantic, openapi, jsonschema)")
	configPath := flag.String("config", "", "YAML config file with defaults")
	flag.Parse()

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to read config: %v", err)
		}
		if *files == "" && len(cfg.Files) > 0 {
			*files = strings.Join(cfg.Files, ",")
		}
		if *folder == "" {
			*folder = cfg.Folder
		}
		if *rootName == "" {
			*rootName = cfg.RootName
		}
		if *output == "" {
			*output = cfg.Output
		}
		if *renderer == "" {
			*renderer = cfg.Renderer
		}
	}

	sources := parseFiles(*files)
	if len(sources) == 0 && *folder == "" {
		log.Fatalf("no input files provided: set -files or -folder")
	}

	gen := orchestrator.New()
	result, err := gen.Generate(context.Background(), orchestrator.Request{
		Sources:  sources,
		Folder:   *folder,
		RootName: *rootName,
		Renderer: *renderer,
	})
	if err != nil {
		log.Fatalf("Failed to generate schema: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Schema written to %s\n", *output)
	} else {
		fmt.Println(string(result))
	}
}

func envDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func parseFiles(raw string) []sample.Source {
	var sources []sample.Source
	for _, part := range strings.Split(raw, ",") {
		path := strings.TrimSpace(part)
		if path == "" {
			continue
		}
		sources = append(sources, sample.SourceFromFile(path))
	}
	return sources
}

func loadConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}
