package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"deckgen/pkg/api/config"
	"deckgen/pkg/api/slides"
	"deckgen/pkg/core/agent"
	"deckgen/pkg/core/generate"
	"deckgen/pkg/core/prompt"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var agentMgr *agent.Manager

func main() {
	// Load environment variables
	godotenv.Load()

	// Built-in day templates first; file-based templates can override them
	prompt.RegisterBuiltins()

	// Determine resources path (relative to executable or working directory)
	resourcesPath := "resources"
	if _, err := os.Stat(resourcesPath); os.IsNotExist(err) {
		exePath, _ := os.Executable()
		resourcesPath = filepath.Join(filepath.Dir(exePath), "resources")
	}
	if err := prompt.LoadFromDirectory(resourcesPath); err != nil {
		fmt.Printf("[WARNING] Failed to load prompt library: %v\n", err)
		fmt.Println("  Falling back to built-in prompts")
	} else {
		fmt.Printf("[PROMPT] Loaded %d prompts from %s\n", prompt.Get().Count(), resourcesPath)
	}

	// Initialize manager from config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	if agentCfg.ActiveProvider == "" {
		agentCfg.ActiveProvider = "gateway"
	}
	agentMgr = agent.NewManager(agentCfg)

	// Config endpoints
	configHandler := config.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	// Slide generation endpoints
	svc := generate.NewService(agentMgr, nil)
	slidesHandler := slides.NewHandler(svc)
	http.HandleFunc("/api/slides/generate", slidesHandler.HandleGenerate)
	http.HandleFunc("/api/slides/meta", slidesHandler.HandleMeta)

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		fmt.Fprint(w, `{"status":"ok"}`)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	fmt.Printf("[API] Server starting on :%s (provider: %s)\n", port, agentMgr.GetActiveProvider())
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")
	fmt.Println("  - POST /api/slides/generate")
	fmt.Println("  - GET  /api/slides/meta")
	fmt.Println("  - GET  /health")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
