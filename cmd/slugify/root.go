package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrymomot/slugify"
	"github.com/dmitrymomot/slugify/locale"
	"github.com/dmitrymomot/slugify/pkg/cache"
	"github.com/dmitrymomot/slugify/pkg/logger"
)

const longHelp = `slugify v%s
Generate URL-safe slugs from any text.

Text is taken from the arguments (joined with spaces) or, when none are
given, from piped standard input.

Examples:
  slugify "Hello World"
  slugify --mode=rfc3986 "Hello World & Test"
  slugify --replacement="_" "Hello World"
  slugify --lower --strict "Café & Restaurant"
  slugify --locale=de "Größe & Gewicht"
  slugify --locale="de-AT,fr;q=0.8" "Größe & Gewicht"
  LANG=de_DE.UTF-8 slugify --locale=auto "Größe & Gewicht"
  slugify --remove='/[aeiou]/i' "Hello World"
  echo "Hello World" | slugify --mode=pretty

Environment:
  SLUGIFY_LOG_LEVEL   log to stderr at this level (debug, info, warn, error)
  SLUGIFY_REDIS_URL   cache slugs in Redis, e.g. redis://localhost:6379/0

Modes:
  pretty      Pretty URLs (preserves case, default settings)
  rfc3986     RFC 3986 compliant (lowercase, URL-safe)

Locales:
  %s`

// cli holds the process streams so that commands can be run in tests.
type cli struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	isTerminal func() bool
	getenv     func(string) string
}

type flagValues struct {
	mode        string
	replacement string
	remove      string
	locale      string
	lower       bool
	strict      bool
	noTrim      bool
	noCollapse  bool
	fallback    bool
	stripHTML   bool
	stripMD     bool
}

// run executes the command line and returns the process exit code.
func (c *cli) run(args []string) int {
	cmd := c.newRootCmd()
	cmd.SetArgs(normalizeArgs(args))

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (c *cli) newRootCmd() *cobra.Command {
	var f flagValues

	cmd := &cobra.Command{
		Use:           "slugify [flags] [text...]",
		Short:         "Generate URL-safe slugs from any text",
		Long:          fmt.Sprintf(longHelp, version, strings.Join(locale.Names(), ", ")),
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.slugify(cmd, args, &f)
		},
	}

	cmd.SetIn(c.stdin)
	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		msg := err.Error()
		if name, ok := strings.CutPrefix(msg, "unknown flag: "); ok {
			return newUsageError(errInvalidConfiguration, "Unknown option: %s", name)
		}
		if strings.HasPrefix(msg, "flag needs an argument") && strings.Contains(msg, "--mode") {
			return invalidModeError("(missing)")
		}
		return newUsageError(errInvalidConfiguration, "%s", err.Error())
	})

	flags := cmd.Flags()
	flags.StringVar(&f.mode, "mode", "", "preset mode: 'pretty' or 'rfc3986'")
	flags.StringVar(&f.replacement, "replacement", "-", "replacement character")
	flags.BoolVar(&f.lower, "lower", false, "convert to lowercase")
	flags.BoolVar(&f.strict, "strict", false, "remove all non-alphanumeric characters")
	flags.BoolVar(&f.noTrim, "no-trim", false, "don't trim replacement chars from ends")
	flags.BoolVar(&f.noCollapse, "no-collapse", false, "don't collapse consecutive replacements")
	flags.BoolVar(&f.fallback, "fallback", false, "use base64 fallback for empty results")
	flags.BoolVar(&f.stripHTML, "strip-html", false, "strip HTML tags and entities first")
	flags.BoolVar(&f.stripMD, "strip-markdown", false, "render Markdown and keep only its text first")
	flags.StringVar(&f.remove, "remove", "", "remove characters: a literal set or /pattern/flags")
	flags.StringVar(&f.locale, "locale", "", "locale character table (de, fr, hi, ...), a preference list, or 'auto'")

	return cmd
}

func (c *cli) slugify(cmd *cobra.Command, args []string, f *flagValues) error {
	opts, err := f.options(cmd)
	if err != nil {
		return err
	}

	text, source, err := c.readInput(args)
	if err != nil {
		return err
	}

	log := c.newLogger()
	ctx := withSource(cmd.Context(), source)

	cfg, localeName, err := c.config(f.locale, opts)
	if err != nil {
		return err
	}

	slugCache, closeCache, err := c.newCache(ctx, log, cacheNamespace(cmd, localeName))
	if err != nil {
		return err
	}
	defer closeCache()
	cfg.Cache = slugCache

	slug, err := slugify.New(cfg).Slugify(text)
	if err != nil {
		log.ErrorContext(ctx, "slug generation failed", slog.String("error", err.Error()))
		return fmt.Errorf("generating slug: %w", err)
	}

	log.DebugContext(ctx, "slug generated",
		slog.Int("input_bytes", len(text)),
		slog.Int("slug_bytes", len(slug)),
		slog.String("locale", localeName),
		slog.Bool("cache", slugCache != nil),
	)

	_, err = fmt.Fprintln(c.stdout, slug)
	return err
}

// config returns the Slugifier configuration for the requested locale and
// the name of the table it uses. "auto" picks the table from the process
// locale and quietly falls back to the base map; other values may list
// several languages in Accept-Language form.
func (c *cli) config(requested string, opts []slugify.Option) (slugify.Config, string, error) {
	base := slugify.Config{Options: opts}
	if requested == "" {
		return base, "", nil
	}

	preferences := requested
	if requested == "auto" {
		preferences = systemLocale(c.getenv)
	}

	name, ok := locale.Match(preferences)
	if !ok {
		if requested == "auto" {
			return base, "", nil
		}
		return slugify.Config{}, "", newUsageError(errInvalidConfiguration, "Unknown locale: %s. Available: %s.",
			requested, strings.Join(locale.Names(), ", "))
	}

	t, err := locale.Lookup(name)
	if err != nil {
		return slugify.Config{}, "", err
	}
	return t.Config(opts...), name, nil
}

// newCache connects to the Redis server named by SLUGIFY_REDIS_URL.
// Without the variable, or when the server does not answer, nothing is
// cached. The returned func closes the connection.
func (c *cli) newCache(ctx context.Context, log *slog.Logger, namespace string) (cache.Cache[string], func(), error) {
	noop := func() {}
	if c.getenv == nil {
		return nil, noop, nil
	}
	url := c.getenv("SLUGIFY_REDIS_URL")
	if url == "" {
		return nil, noop, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, noop, newUsageError(errInvalidConfiguration, "Invalid SLUGIFY_REDIS_URL: %v", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		log.WarnContext(ctx, "redis unavailable, cache disabled", slog.String("error", err.Error()))
		return nil, noop, nil
	}

	return cache.NewRedis(client, cache.WithPrefix(namespace)), func() { _ = client.Close() }, nil
}

const redisPingTimeout = time.Second

// cacheNamespace derives the Redis key prefix from every setting that can
// change a slug, so different flag sets never share entries.
func cacheNamespace(cmd *cobra.Command, localeName string) string {
	var b strings.Builder
	b.WriteString("version=" + version + ";locale=" + localeName)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if f.Name == "locale" {
			return
		}
		b.WriteString(";" + f.Name + "=" + f.Value.String())
	})
	return "slugify:" + strconv.FormatUint(xxhash.Sum64String(b.String()), 16)
}

// systemLocale reads the POSIX locale variables in priority order and
// returns the first usable value as a language tag, "de_DE.UTF-8" -> "de-DE".
func systemLocale(getenv func(string) string) string {
	if getenv == nil {
		return ""
	}
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := getenv(key)
		value, _, _ = strings.Cut(value, ".")
		value, _, _ = strings.Cut(value, "@")
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		return strings.ReplaceAll(value, "_", "-")
	}
	return ""
}

// options converts the flags that were set on the command line.
func (f *flagValues) options(cmd *cobra.Command) ([]slugify.Option, error) {
	flags := cmd.Flags()
	var opts []slugify.Option

	if flags.Changed("mode") {
		mode, err := slugify.ParseMode(f.mode)
		if err != nil {
			return nil, invalidModeError(f.mode)
		}
		opts = append(opts, slugify.WithMode(mode))
	}
	if flags.Changed("replacement") {
		opts = append(opts, slugify.Replacement(f.replacement))
	}
	if flags.Changed("lower") {
		opts = append(opts, slugify.Lower(f.lower))
	}
	if flags.Changed("strict") {
		opts = append(opts, slugify.Strict(f.strict))
	}
	if flags.Changed("no-trim") {
		opts = append(opts, slugify.Trim(!f.noTrim))
	}
	if flags.Changed("no-collapse") {
		opts = append(opts, slugify.Collapse(!f.noCollapse))
	}
	if flags.Changed("fallback") {
		opts = append(opts, slugify.Fallback(f.fallback))
	}
	if flags.Changed("strip-html") {
		opts = append(opts, slugify.StripHTML(f.stripHTML))
	}
	if flags.Changed("strip-markdown") {
		opts = append(opts, slugify.StripMarkdown(f.stripMD))
	}
	if flags.Changed("remove") {
		opt, err := parseRemove(f.remove)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}

	return opts, nil
}

func invalidModeError(value string) error {
	return newUsageError(errInvalidConfiguration, "Invalid mode: %s. Use 'pretty' or 'rfc3986'.", value)
}

// parseRemove reads "/body/flags" as a regular expression and anything else
// as a literal character set.
func parseRemove(value string) (slugify.Option, error) {
	end := strings.LastIndexByte(value, '/')
	if !strings.HasPrefix(value, "/") || end < 1 {
		return slugify.RemoveChars(value), nil
	}

	body, flags := value[1:end], value[end+1:]
	prefix, err := regexpFlags(flags)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(prefix + body)
	if err != nil {
		return nil, newUsageError(errInvalidConfiguration, "Invalid remove pattern: %v", err)
	}
	return slugify.RemovePattern(re), nil
}

// regexpFlags maps pattern flags to an RE2 flag group. Flags that only
// affect matching state (g, y, d) or encoding (u) are accepted and ignored.
func regexpFlags(flags string) (string, error) {
	var set strings.Builder
	for _, r := range flags {
		switch r {
		case 'i', 'm', 's':
			if !strings.ContainsRune(set.String(), r) {
				set.WriteRune(r)
			}
		case 'g', 'u', 'y', 'd':
		default:
			return "", newUsageError(errInvalidConfiguration, "Invalid remove pattern flag: %c", r)
		}
	}
	if set.Len() == 0 {
		return "", nil
	}
	return "(?" + set.String() + ")", nil
}

// readInput returns the text to slugify and where it came from.
func (c *cli) readInput(args []string) (string, string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), "args", nil
	}

	if c.isTerminal != nil && c.isTerminal() {
		return "", "", newUsageError(errNoInput, "No input provided. Use --help for usage information.")
	}

	data, err := io.ReadAll(c.stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading from stdin: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", "", newUsageError(errNoInput, "No input provided.")
	}
	return text, "stdin", nil
}

// newLogger writes to stderr at the level named by SLUGIFY_LOG_LEVEL.
// Without it, or with an unknown level, nothing is logged.
func (c *cli) newLogger() *slog.Logger {
	if c.getenv == nil {
		return logger.NewNope()
	}
	level, ok := logger.ParseLevel(c.getenv("SLUGIFY_LOG_LEVEL"))
	if !ok {
		return logger.NewNope()
	}
	return logger.New(c.stderr, level, sourceExtractor).With(slog.String("cmd", "slugify"))
}

type sourceKey struct{}

func withSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey{}, source)
}

func sourceExtractor(ctx context.Context) (slog.Attr, bool) {
	source, ok := ctx.Value(sourceKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("source", source), true
}

// valueFlags take an argument; the others are booleans.
var valueFlags = map[string]bool{
	"--mode":        true,
	"--replacement": true,
	"--remove":      true,
	"--locale":      true,
}

// normalizeArgs moves free text behind "--" so that text starting with a
// dash, such as "-Hello World-", is not read as a shorthand flag. Values of
// flags given as a separate argument are joined with "=" for the same reason.
func normalizeArgs(args []string) []string {
	flags := make([]string, 0, len(args))
	var text []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			text = append(text, args[i+1:]...)
			i = len(args)
		case valueFlags[arg]:
			if i+1 < len(args) {
				flags = append(flags, arg+"="+args[i+1])
				i++
			} else {
				// Without text behind it the flag reports its missing value
				// instead of taking "--" as one.
				return append(flags, arg)
			}
		case strings.HasPrefix(arg, "--"), arg == "-h", arg == "-v":
			flags = append(flags, arg)
		default:
			text = append(text, arg)
		}
	}

	if len(text) == 0 {
		return flags
	}
	return append(append(flags, "--"), text...)
}
