package cmd

import (
	"fmt"
	"io"
)

var (
	// ANSI Colors
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
)

func printHeader(w io.Writer, msg string) {
	fmt.Fprintf(w, "\n%s%s%s\n", colorBold, msg, colorReset)
}

func printSuccess(w io.Writer, label, detail string) {
	fmt.Fprintf(w, "  %s✔%s %-15s %s%s\n", colorGreen, colorReset, label, colorGreen, detail+colorReset)
}

func printError(w io.Writer, label, detail string) {
	fmt.Fprintf(w, "  %s✘%s %-15s %s%s\n", colorRed, colorReset, label, colorRed, detail+colorReset)
}

func printWarning(w io.Writer, label, detail string) {
	fmt.Fprintf(w, "  %s!%s %-15s %s%s\n", colorYellow, colorReset, label, colorYellow, detail+colorReset)
}
