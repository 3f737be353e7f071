// Package cliflag adapts argv for pflag-based CLIs in this module.
package cliflag

// NormalizeSingleDash rewrites single-dash long flags ("-encode") into the
// double-dash form pflag expects ("--encode"), so a driver can parse with
// pflag while keeping the single-dash, multi-letter flag shape its CLI
// surface has always used. Genuine short flags ("-v") are left alone,
// since pflag handles those natively.
func NormalizeSingleDash(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if len(a) > 2 && a[0] == '-' && a[1] != '-' {
			out = append(out, "-"+a)
			continue
		}
		out = append(out, a)
	}
	return out
}
