package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every shell script is generated from flagRegistry, so adding a flag only
// requires appending to it.
type FlagCompletion struct {
	Long      string   // long flag name without "-" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsAlgo    bool     // true if values come from the algorithm list
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "amount", Help: "Target amount M", ValueName: "number"},
	{Long: "coins", Help: "Coin denominations", ValueName: "list"},
	{Long: "algo", Help: "Algorithm to use", IsAlgo: true, ValueName: "algorithm"},
	{Long: "timeout", Help: "Maximum duration of each run", Values: []string{"1s", "10s", "1m", "5m"}, ValueName: "duration"},
	{Long: "naive-limit", Help: "Largest amount for naive recursion", Values: []string{"20", "30", "40"}, ValueName: "number"},
	{Long: "verbose", Short: "v", Help: "Write debug logs"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "details", Short: "d", Help: "Show work statistics"},
	{Long: "metrics", Help: "Print Prometheus metrics"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//   - algorithms: List of available algorithm names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, algorithms)
	case "zsh":
		return generateZshCompletion(out, algorithms)
	case "fish":
		return generateFishCompletion(out, algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

func formatAlgoList(algorithms []string) string {
	return strings.Join(algorithms, " ")
}

func generateBashCompletion(out io.Writer, algorithms []string) error {
	var opts []string
	for _, f := range flagRegistry {
		opts = append(opts, "-"+f.Long)
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	var cases strings.Builder
	for _, f := range flagRegistry {
		var words string
		switch {
		case f.IsAlgo:
			words = "${algorithms}"
		case len(f.Values) > 0:
			words = strings.Join(f.Values, " ")
		default:
			continue
		}
		fmt.Fprintf(&cases, "        -%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n", f.Long, words)
	}

	script := fmt.Sprintf(`# Bash completion script for coincalc
# Add this to your ~/.bashrc or ~/.bash_completion

_coincalc_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    algorithms="%s all"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _coincalc_completions coincalc
`, strings.Join(opts, " "), formatAlgoList(algorithms), cases.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

func generateZshCompletion(out io.Writer, algorithms []string) error {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef coincalc

# Zsh completion script for coincalc
# Add this to your ~/.zshrc or place in $fpath

_coincalc() {
    local -a algorithms
    algorithms=(%s all)

    _arguments -s \
%s
}

_coincalc "$@"
`, formatAlgoList(algorithms), strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsAlgo:
		valueSuffix = fmt.Sprintf(":%s:($algorithms)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Short != "" {
		return fmt.Sprintf("        '(-%s -%s)'{-%s,-%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

func generateFishCompletion(out io.Writer, algorithms []string) error {
	lines := []string{
		"# Fish completion script for coincalc",
		"# Add this to ~/.config/fish/completions/coincalc.fish",
		"",
		"complete -c coincalc -f",
	}
	algoList := formatAlgoList(algorithms)
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, algoList))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete
// command. Go flags take a single dash, which fish calls an old-style option.
func fishCompleteLine(f FlagCompletion, algoList string) string {
	parts := []string{"complete -c coincalc", "-o " + f.Long}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsAlgo:
		parts = append(parts, fmt.Sprintf("-xa '%s all'", algoList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}
