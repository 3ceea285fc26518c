package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/rv32i-tools/rv32i-asm/api"
	"github.com/rv32i-tools/rv32i-asm/asm"
	"github.com/rv32i-tools/rv32i-asm/assemble"
	"github.com/rv32i-tools/rv32i-asm/config"
	"github.com/rv32i-tools/rv32i-asm/decoder"
	"github.com/rv32i-tools/rv32i-asm/tools"
	"github.com/rv32i-tools/rv32i-asm/tui"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	var (
		showVersion  = flag.Bool("version", false, "Show version information")
		showHelp     = flag.BoolP("help", "h", false, "Show help information")
		outputPath   = flag.StringP("output", "o", "", "Output file path (default: stdout)")
		noAnnotate   = flag.Bool("disable_annotations", false, "Disable PC/line annotations in the memory image")
		noSourceMap  = flag.Bool("disable_sourcemaps", false, "Disable source map output")
		verboseMode  = flag.BoolP("verbose", "v", cfg.CLI.Verbose, "Verbose output")
		gccPreamble  = flag.StringP("gcc", "c", "", "Prepend a fixed preamble assembly file before assembling")
		disassemble  = flag.BoolP("disassemble", "d", false, "Treat input as a stream of hex words and disassemble")
		labelsPath   = flag.String("labels", "", "Address->label file consumed by -d/--disassemble")
		lint         = flag.Bool("lint", false, "Run static lint checks after assembling and print findings to stderr")
		formatOnly   = flag.Bool("format", false, "Re-emit input with aligned columns instead of assembling")
		apiServer    = flag.Bool("api-server", false, "Start HTTP API server mode")
		apiPort      = flag.Int("port", 8080, "API server port (used with --api-server)")
		tuiMode      = flag.Bool("tui", false, "Assemble input then open the TUI browser on the result")
	)

	if os.Getenv("RV32I_ASM_VERBOSE") != "" {
		*verboseMode = true
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("rv32i-asm %s (commit %s, built %s)\n", Version, Commit, Date)
		os.Exit(0)
	}
	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	if *apiServer {
		runAPIServer(*apiPort)
		return
	}

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}
	inputPath := flag.Arg(0)

	if *formatOnly {
		runFormat(inputPath)
		return
	}
	if *disassemble {
		runDisassemble(inputPath, *labelsPath)
		return
	}

	preamble := *gccPreamble
	if preamble == "" {
		preamble = cfg.Assemble.PreamblePath
	}
	source, err := readSource(inputPath, preamble)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	if *verboseMode {
		fmt.Fprintf(os.Stderr, "Assembling %s\n", inputPath)
	}

	prog, result, err := assemble.Assemble(strings.NewReader(source), inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assembly error: %v\n", err)
		os.Exit(1)
	}

	annotate := cfg.Assemble.Annotations && !*noAnnotate
	writeSourceMap := cfg.Assemble.SourceMaps && !*noSourceMap

	out := os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath) // #nosec G304 -- user-specified output path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := assemble.WriteImage(out, prog, result, *outputPath, annotate); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing memory image: %v\n", err)
		os.Exit(1)
	}

	if writeSourceMap {
		mapPath := sourceMapPath(*outputPath)
		mf, err := os.Create(mapPath) // #nosec G304 -- derived from user-specified output path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating source map: %v\n", err)
			os.Exit(1)
		}
		defer mf.Close()
		if err := assemble.WriteSourceMap(mf, prog); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing source map: %v\n", err)
			os.Exit(1)
		}
	}

	if *verboseMode {
		fmt.Fprintf(os.Stderr, "Wrote %d words, %d labels\n", len(result.Words), len(prog.Labels.Names()))
	}

	if *lint {
		runLint(prog)
	}

	if *tuiMode {
		app := tui.NewApp(prog, result)
		if err := app.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
			os.Exit(1)
		}
	}
}

// readSource reads inputPath, prepending the preamble file's contents
// when gccPreamble names one (spec.md §6's -c/--gcc flag).
func readSource(inputPath, gccPreamble string) (string, error) {
	body, err := os.ReadFile(inputPath) // #nosec G304 -- user-specified input path
	if err != nil {
		return "", err
	}
	if gccPreamble == "" {
		return string(body), nil
	}
	preamble, err := os.ReadFile(gccPreamble) // #nosec G304 -- user-specified preamble path
	if err != nil {
		return "", fmt.Errorf("reading preamble %s: %w", gccPreamble, err)
	}
	return string(preamble) + "\n" + string(body), nil
}

func sourceMapPath(outputPath string) string {
	if outputPath == "" {
		return "a.out.map"
	}
	return outputPath + ".map"
}

func runLint(prog *asm.Program) {
	issues := tools.NewLinter(nil).Lint(prog)
	for _, issue := range issues {
		fmt.Fprintln(os.Stderr, issue.String())
	}
}

func runFormat(inputPath string) {
	body, err := os.ReadFile(inputPath) // #nosec G304 -- user-specified input path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	prog := asm.NewProgram(inputPath)
	if err := prog.ReadSource(strings.NewReader(string(body))); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing input: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(tools.FormatSource(prog))
}

func runDisassemble(inputPath, labelsPath string) {
	f, err := os.Open(inputPath) // #nosec G304 -- user-specified input path
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	labels := asm.NewLabelTable()
	if labelsPath != "" {
		if err := loadLabels(labelsPath, labels); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading labels: %v\n", err)
			os.Exit(1)
		}
	}

	scanner := bufio.NewScanner(f)
	var address uint32
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		word, err := strconv.ParseUint(strings.TrimPrefix(line, "0x"), 16, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid word %q: %v\n", line, err)
			os.Exit(1)
		}
		text, err := decoder.Decode(uint32(word), address, labels)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Decode error at 0x%08x: %v\n", address, err)
			os.Exit(1)
		}
		fmt.Printf("%08x: %s\n", address, text)
		address += 4
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// loadLabels reads "NAME ADDRESS" pairs, one per line (ADDRESS in hex,
// with or without a 0x prefix), into labels.
func loadLabels(path string, labels *asm.LabelTable) error {
	f, err := os.Open(path) // #nosec G304 -- user-specified labels path
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		addr, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 32)
		if err != nil {
			return fmt.Errorf("invalid address for label %q: %w", fields[0], err)
		}
		labels.Define(fields[0], uint32(addr))
	}
	return scanner.Err()
}

func runAPIServer(port int) {
	server := api.NewServer(port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	fmt.Println("\nShutting down API server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("API server stopped")
}

func printHelp() {
	fmt.Printf(`rv32i-asm %s

Usage: rv32i-asm [options] <input>
       rv32i-asm --api-server [--port N]

Options:
  -h, --help                  Show this help message
      --version                Show version information
  -o, --output PATH            Output file path (default: stdout)
      --disable_annotations    Disable PC/line annotations in the memory image
      --disable_sourcemaps     Disable source map output
  -v, --verbose                Verbose output (env: RV32I_ASM_VERBOSE=1)
  -c, --gcc PATH                Prepend a fixed preamble assembly file

  -d, --disassemble             Treat input as a stream of hex words and disassemble
      --labels PATH             Address->label file consumed by -d
      --lint                    Run lint checks and print findings to stderr
      --format                  Re-emit input with aligned columns instead of assembling
      --api-server              Start HTTP API server mode
      --port N                  API server port (default: 8080)
      --tui                     Assemble input then open the TUI browser on the result

Examples:
  rv32i-asm program.s
  rv32i-asm -o program.hex program.s
  rv32i-asm --lint program.s
  rv32i-asm -d program.hex
  rv32i-asm --api-server --port 3000
`, Version)
}
