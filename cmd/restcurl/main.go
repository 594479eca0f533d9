package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/unkn0wn-root/restcurl/internal/config"
	"github.com/unkn0wn-root/restcurl/internal/curl"
	"github.com/unkn0wn-root/restcurl/internal/filesvc"
	"github.com/unkn0wn-root/restcurl/internal/notify"
	"github.com/unkn0wn-root/restcurl/internal/parser"
	"github.com/unkn0wn-root/restcurl/internal/restfile"
	"github.com/unkn0wn-root/restcurl/internal/vars"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	var (
		filePath    string
		line        int
		usePrev     bool
		useNext     bool
		envName     string
		envFile     string
		workspace   string
		recursive   bool
		listOnly    bool
		dryRun      bool
		showVersion bool
		initConfig  bool
	)

	flag.StringVar(&filePath, "file", "", "Path to .http/.rest file to compile")
	flag.IntVar(&line, "line", 1, "Cursor line (1-based) selecting the request")
	flag.BoolVar(&usePrev, "prev", false, "Select the request before the one under the cursor")
	flag.BoolVar(&useNext, "next", false, "Select the request after the one under the cursor")
	flag.StringVar(&envName, "env", "", "Environment name to use")
	flag.StringVar(&envFile, "env-file", "", "Path to environment file")
	flag.StringVar(&workspace, "workspace", "", "Directory to scan for request files when -file is not set")
	flag.BoolVar(&recursive, "recursive", false, "Recursively scan workspace for request files")
	flag.BoolVar(&listOnly, "list", false, "List the parsed requests and exit")
	flag.BoolVar(&dryRun, "dry-run", false, "Skip capture-file writes; only print the command")
	flag.BoolVar(&showVersion, "version", false, "Show restcurl version")
	flag.BoolVar(&initConfig, "init-config", false, "Write a default settings file and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("restcurl %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}

	if initConfig {
		handle := config.SettingsHandle{
			Path:   filepath.Join(config.Dir(), "settings.toml"),
			Format: config.SettingsFormatTOML,
		}
		if err := config.SaveSettings(config.Settings{}, handle); err != nil {
			log.Fatalf("init config: %v", err)
		}
		fmt.Printf("Wrote %s\n", handle.Path)
		os.Exit(0)
	}

	settings, _, err := config.LoadSettings()
	if err != nil {
		log.Printf("settings load error: %v", err)
		settings = config.Settings{}
	}

	if filePath == "" && flag.NArg() > 0 {
		filePath = flag.Arg(0)
	}
	if filePath == "" && workspace != "" {
		entries, listErr := filesvc.ListRequestFiles(workspace, recursive)
		if listErr != nil {
			log.Fatalf("scan workspace: %v", listErr)
		}
		if len(entries) == 0 {
			log.Fatalf("no request files under %s", workspace)
		}
		filePath = entries[0].Path
	}
	if filePath == "" {
		log.Fatalf("no request file given; use -file or -workspace")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("read file: %v", err)
	}
	filePath = filepath.Clean(filePath)

	sink := notify.NewStderrSink(os.Stderr)
	fs := filesvc.NewOS(filepath.Dir(filePath))

	envProvider := loadEnvironment(envFile, filePath, envName, sink)
	dynamics := vars.NewDynamics()

	doc := parser.New(fs, sink, dynamics, envProvider).Parse(filePath, data)

	if listOnly {
		printRequests(doc)
		os.Exit(0)
	}

	req, ok := parser.AtCursor(doc, line)
	switch {
	case usePrev:
		req, ok = parser.Previous(doc, line)
	case useNext:
		req, ok = parser.Next(doc, line)
	}
	if !ok {
		log.Fatalf("no request at line %d in %s", line, filePath)
	}

	resolver := vars.NewResolver(
		sink,
		dynamics,
		vars.NewMapProvider("file", doc.VariableMap()),
		envProvider,
	)
	resolved := curl.Resolve(req, resolver, fs, sink)

	out := curl.NewOutput(filesvc.NewOS(""), config.OutputDir(settings))
	cmd := curl.BuildCommand(resolved, curl.BuildOptions{
		HeadersFile:  out.HeadersPath(),
		BodyFile:     out.BodyPath(),
		ExtraOptions: settings.AdditionalCurlOptions,
		Version:      version,
	})

	if !dryRun {
		if err := out.Prepare(cmd.Filetype); err != nil {
			log.Fatalf("prepare output files: %v", err)
		}
		if settings.Debug {
			if err := out.WriteDebug(cmd.Args); err != nil {
				log.Printf("debug write error: %v", err)
			}
		}
	}

	if cmd.PipeTarget != "" {
		notify.Infof(sink, "pipe target: %s", cmd.PipeTarget)
	}
	fmt.Println(strings.Join(cmd.Args, " "))
}

func loadEnvironment(explicit, filePath, envName string, sink notify.Sink) vars.Provider {
	var (
		envs vars.EnvironmentSet
		err  error
	)
	if explicit != "" {
		envs, err = vars.LoadEnvironmentFile(explicit)
		if err != nil {
			log.Fatalf("load environment file %s: %v", explicit, err)
		}
	} else {
		searchPaths := []string{filepath.Dir(filePath)}
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			searchPaths = append(searchPaths, cwd)
		}
		envs, _, err = vars.ResolveEnvironment(searchPaths)
		if err != nil {
			// environments are optional; templates fall back to warnings
			return nil
		}
	}

	if envName == "" {
		envName = selectDefaultEnvironment(envs)
	}
	if _, ok := envs[envName]; !ok && envName != "" {
		notify.Warnf(sink, "environment %q not found (available: %s)",
			envName, strings.Join(envs.Names(), ", "))
	}
	return envs.Provider(envName)
}

func selectDefaultEnvironment(envs vars.EnvironmentSet) string {
	if len(envs) == 0 {
		return ""
	}
	preferred := []string{"dev", "default", "local"}
	for _, name := range preferred {
		if _, ok := envs[name]; ok {
			return name
		}
	}
	names := make([]string, 0, len(envs))
	for name := range envs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names[0]
}

func printRequests(doc *restfile.Document) {
	for i, req := range doc.Requests {
		fmt.Printf("%2d  [%d-%d]  %s %s\n", i+1, req.Range.Start, req.Range.End, req.Method, req.URL)
	}
}
