// Package main benchmarks the gitplots CLI against a real root of categories.
// Every command is run once per reader, treating the first successful run as
// cold and averaging the rest as warm, and the results are written as CSV.
//
// Prerequisites:
// - gitplots binary installed and available in PATH
// - A root folder of category folders holding Git repositories
//
// Usage: go run benchmark/main.go [root-dir]
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// BenchmarkResult holds the timings of one command with one reader.
type BenchmarkResult struct {
	Command  string
	Reader   string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Root     string
	Timeout  time.Duration
	Workers  int
	Runs     int
	Readers  []string
	Commands [][]string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [root-dir]\n", os.Args[0])
		os.Exit(1)
	}

	outDir, err := os.MkdirTemp("", "gitplots-benchmark-*")
	if err != nil {
		fmt.Printf("Failed to create chart folder: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = os.RemoveAll(outDir) }()

	config := BenchmarkConfig{
		Root:    os.Args[1],
		Timeout: 5 * time.Minute,
		Workers: 8,
		Runs:    4,
		Readers: []string{"git", "gogit"},
		Commands: [][]string{
			{"table", "--output", "csv"},
			{"summary", "--bucket", "weekly"},
			{"plot", "--buckets", "monthly,weekly,daily", "--output-dir", outDir},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the gitplots binary and the root exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("gitplots"); err != nil {
		return fmt.Errorf("gitplots binary not found in PATH")
	}
	info, err := os.Stat(config.Root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("root %s is not a directory", config.Root)
	}
	return nil
}

// runBenchmarks executes every command with every reader
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %s, %v timeout, %d workers, %d runs\n",
		config.Root, config.Timeout, config.Workers, config.Runs)

	for _, command := range config.Commands {
		for _, reader := range config.Readers {
			fmt.Printf("Running %s with %s reader\n", command[0], reader)
			results = append(results, runBenchmark(config, command, reader))
		}
	}
	return results
}

// runBenchmark runs one command config.Runs times and summarizes its timings
func runBenchmark(config BenchmarkConfig, command []string, reader string) BenchmarkResult {
	args := append([]string{command[0], config.Root, "--reader", reader, "--workers", fmt.Sprint(config.Workers)}, command[1:]...)

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		start := time.Now()
		output, err := exec.CommandContext(ctx, "gitplots", args...).CombinedOutput()
		elapsed := time.Since(start).Seconds()
		cancel()
		if err == nil && isSuccess(output, command[0]) {
			times = append(times, elapsed)
		}
	}

	result := BenchmarkResult{Command: command[0], Reader: reader, ColdTime: "TIMEOUT", WarmTime: "TIMEOUT"}
	if len(times) > 0 {
		result.ColdTime = fmt.Sprintf("%.3fs", times[0])
	}
	if len(times) > 1 {
		var sum float64
		for _, t := range times[1:] {
			sum += t
		}
		result.WarmTime = fmt.Sprintf("%.3fs", sum/float64(len(times)-1))
	}
	fmt.Printf("  Cold: %s, Warm average: %s\n", result.ColdTime, result.WarmTime)
	return result
}

// isSuccess checks if command output carries the trailer each command prints
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)
	switch command {
	case "plot":
		return strings.Contains(outputStr, "charts in")
	case "summary":
		return strings.Contains(outputStr, "Summary completed in")
	default:
		// CSV output has no trailer
		return strings.Contains(outputStr, "category,repository,date,commits")
	}
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/gitplots_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"cmd", "reader", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Command, result.Reader, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-8s %-6s: Cold: %s, Warm: %s\n", result.Command, result.Reader, result.ColdTime, result.WarmTime)
	}
}
