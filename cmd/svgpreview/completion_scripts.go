package main

import (
	"fmt"
	"io"
	"strings"
)

// scriptWriter accumulates a script and keeps the first write error.
type scriptWriter struct {
	w   io.Writer
	err error
}

func (s *scriptWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func commandNames(cmds []compCommand) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.name
	}
	return strings.Join(names, " ")
}

func flagWords(flags []compFlag) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.name)
		if f.short != "" {
			words = append(words, "-"+f.short)
		}
	}
	return strings.Join(words, " ")
}

// generateBash writes a bash completion script.
func generateBash(w io.Writer, cmds []compCommand) error {
	s := &scriptWriter{w: w}

	s.printf("# bash completion for svgpreview\n\n")
	s.printf("_svgpreview_completions() {\n")
	s.printf("    local cur prev cmd\n")
	s.printf("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	s.printf("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	s.printf("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	s.printf("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	s.printf("        COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", commandNames(cmds))
	s.printf("        return\n")
	s.printf("    fi\n\n")
	s.printf("    case \"$cmd\" in\n")

	for _, c := range cmds {
		s.printf("        %s)\n", c.name)

		var valueCases []string
		for _, f := range c.flags {
			pattern := "--" + f.name
			if f.short != "" {
				pattern += "|-" + f.short
			}
			switch f.kind {
			case valueDir:
				valueCases = append(valueCases, fmt.Sprintf("                %s) COMPREPLY=( $(compgen -d -- \"$cur\") ); return ;;\n", pattern))
			case valueFile:
				valueCases = append(valueCases, fmt.Sprintf("                %s) COMPREPLY=( $(compgen -f -X '!%s' -- \"$cur\") $(compgen -d -- \"$cur\") ); return ;;\n", pattern, f.glob))
			case valueText:
				valueCases = append(valueCases, fmt.Sprintf("                %s) return ;;\n", pattern))
			}
		}
		if len(valueCases) > 0 {
			s.printf("            case \"$prev\" in\n")
			for _, vc := range valueCases {
				s.printf("%s", vc)
			}
			s.printf("            esac\n")
		}

		s.printf("            if [[ \"$cur\" == -* ]]; then\n")
		s.printf("                COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", flagWords(c.flags))
		switch {
		case len(c.words) > 0:
			s.printf("            else\n")
			s.printf("                COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(c.words, " "))
		case c.argGlob != "":
			s.printf("            else\n")
			s.printf("                COMPREPLY=( $(compgen -f -X '!%s' -- \"$cur\") $(compgen -d -- \"$cur\") )\n", c.argGlob)
		case c.dirArg:
			s.printf("            else\n")
			s.printf("                COMPREPLY=( $(compgen -d -- \"$cur\") )\n")
		}
		s.printf("            fi\n")
		s.printf("            ;;\n")
	}

	s.printf("    esac\n")
	s.printf("}\n\n")
	s.printf("complete -F _svgpreview_completions svgpreview\n")

	return s.err
}

// zshQuote escapes text for use inside a single-quoted _arguments spec.
func zshQuote(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

// generateZsh writes a zsh completion script.
func generateZsh(w io.Writer, cmds []compCommand) error {
	s := &scriptWriter{w: w}

	s.printf("#compdef svgpreview\n\n")
	s.printf("_svgpreview() {\n")
	s.printf("    local -a commands\n")
	s.printf("    commands=(\n")
	for _, c := range cmds {
		s.printf("        '%s:%s'\n", c.name, zshQuote(c.summary))
	}
	s.printf("    )\n\n")
	s.printf("    if (( CURRENT == 2 )); then\n")
	s.printf("        _describe 'command' commands\n")
	s.printf("        return\n")
	s.printf("    fi\n\n")
	s.printf("    case \"${words[2]}\" in\n")

	for _, c := range cmds {
		s.printf("        %s)\n", c.name)
		s.printf("            _arguments \\\n")
		for _, f := range c.flags {
			action := ""
			switch f.kind {
			case valueDir:
				action = ":dir:_files -/"
			case valueFile:
				action = fmt.Sprintf(":file:_files -g '%s'", f.glob)
			case valueText:
				action = ":value:"
			}
			desc := zshQuote(f.usage)
			if f.short != "" {
				s.printf("                '(-%s --%s)'{-%s,--%s}'[%s]%s' \\\n", f.short, f.name, f.short, f.name, desc, action)
			} else {
				s.printf("                '--%s[%s]%s' \\\n", f.name, desc, action)
			}
		}
		switch {
		case len(c.words) > 0:
			s.printf("                '1:argument:(%s)'\n", strings.Join(c.words, " "))
		case c.argGlob != "":
			s.printf("                '*:file:_files -g \"%s\"'\n", c.argGlob)
		case c.dirArg:
			s.printf("                '1:directory:_files -/'\n")
		default:
			s.printf("                '*:: :'\n")
		}
		s.printf("            ;;\n")
	}

	s.printf("    esac\n")
	s.printf("}\n\n")
	s.printf("compdef _svgpreview svgpreview\n")

	return s.err
}

// fishQuote escapes text for a single-quoted fish string.
func fishQuote(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

// generateFish writes a fish completion script.
func generateFish(w io.Writer, cmds []compCommand) error {
	s := &scriptWriter{w: w}

	s.printf("# fish completion for svgpreview\n\n")
	s.printf("function __fish_svgpreview_needs_command\n")
	s.printf("    set -l cmd (commandline -opc)\n")
	s.printf("    test (count $cmd) -eq 1\n")
	s.printf("end\n\n")
	s.printf("function __fish_svgpreview_using_command\n")
	s.printf("    set -l cmd (commandline -opc)\n")
	s.printf("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	s.printf("end\n\n")
	s.printf("complete -c svgpreview -f\n\n")

	for _, c := range cmds {
		s.printf("complete -c svgpreview -n __fish_svgpreview_needs_command -a %s -d '%s'\n", c.name, fishQuote(c.summary))
	}
	s.printf("\n")

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_svgpreview_using_command %s'", c.name)
		for _, f := range c.flags {
			line := fmt.Sprintf("complete -c svgpreview -n %s -l %s", cond, f.name)
			if f.short != "" {
				line += " -s " + f.short
			}
			switch f.kind {
			case valueDir:
				line += " -r -a '(__fish_complete_directories)'"
			case valueFile:
				line += fmt.Sprintf(" -r -a '(__fish_complete_suffix %s)'", strings.TrimPrefix(f.glob, "*"))
			case valueText:
				line += " -r"
			}
			s.printf("%s -d '%s'\n", line, fishQuote(f.usage))
		}
		switch {
		case len(c.words) > 0:
			s.printf("complete -c svgpreview -n %s -a '%s'\n", cond, strings.Join(c.words, " "))
		case c.argGlob == "*.svg":
			s.printf("complete -c svgpreview -n %s -a '(__fish_complete_suffix .svg)'\n", cond)
		case c.argGlob != "":
			s.printf("complete -c svgpreview -n %s -F\n", cond)
		case c.dirArg:
			s.printf("complete -c svgpreview -n %s -a '(__fish_complete_directories)'\n", cond)
		}
	}

	return s.err
}
