package cli

import "strings"

func joinTail(args []string) string {
	return strings.Join(args, " ")
}

func verdictWord(approve bool) string {
	if approve {
		return "Approved"
	}
	return "Rejected"
}
