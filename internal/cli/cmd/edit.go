package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/pinboard/internal/application/usecase"
	"github.com/bnema/pinboard/internal/domain/entity"
)

var (
	cookieDomain   string
	cookiePath     string
	cookieSecure   bool
	cookieHTTPOnly bool
	cookieSameSite string
	cookieExpires  string
	cookieMaxAge   time.Duration
)

var cookiesCmd = &cobra.Command{
	Use:     "cookies",
	Aliases: []string{"cookie"},
	Short:   "Edit cookies of the active tab",
}

var cookiesSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Create or replace a cookie",
	Long: `Create or replace a cookie for the URL of the active tab.

Without --expires or --max-age a session cookie is written.

Examples:
  pinboard cookies set theme dark
  pinboard cookies set sid abc --secure --http-only --same-site lax --max-age 24h`,
	Args: cobra.ExactArgs(2),
	RunE: runCookiesSet,
}

var cookiesRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a cookie",
	Args:  cobra.ExactArgs(1),
	RunE:  runCookiesRm,
}

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Edit local or session storage of the active tab",
}

var storageSetCmd = &cobra.Command{
	Use:   "set <local|session> <key> <value>",
	Short: "Write a storage item",
	Args:  cobra.ExactArgs(3),
	RunE:  runStorageSet,
}

var storageRmCmd = &cobra.Command{
	Use:   "rm <local|session> <key>",
	Short: "Remove a storage item",
	Args:  cobra.ExactArgs(2),
	RunE:  runStorageRm,
}

func init() {
	rootCmd.AddCommand(cookiesCmd, storageCmd)
	cookiesCmd.AddCommand(cookiesSetCmd, cookiesRmCmd)
	storageCmd.AddCommand(storageSetCmd, storageRmCmd)

	for _, c := range []*cobra.Command{cookiesSetCmd, cookiesRmCmd} {
		c.Flags().StringVar(&cookieDomain, "domain", "", "cookie domain (defaults to the tab host)")
		c.Flags().StringVar(&cookiePath, "path", "/", "cookie path")
	}
	cookiesSetCmd.Flags().BoolVar(&cookieSecure, "secure", false, "only send over HTTPS")
	cookiesSetCmd.Flags().BoolVar(&cookieHTTPOnly, "http-only", false, "hide from page scripts")
	cookiesSetCmd.Flags().StringVar(&cookieSameSite, "same-site", "", "lax, strict or none")
	cookiesSetCmd.Flags().StringVar(&cookieExpires, "expires", "", "expiry time (RFC 3339)")
	cookiesSetCmd.Flags().DurationVar(&cookieMaxAge, "max-age", 0, "expiry relative to now")
}

func cookieInputFromFlags(name, value string, now time.Time) (usecase.CookieInput, error) {
	in := usecase.CookieInput{
		Name:     name,
		Value:    value,
		Domain:   cookieDomain,
		Path:     cookiePath,
		Secure:   cookieSecure,
		HTTPOnly: cookieHTTPOnly,
		SameSite: entity.SameSite(cookieSameSite),
	}

	switch {
	case cookieExpires != "" && cookieMaxAge != 0:
		return in, fmt.Errorf("use either --expires or --max-age")
	case cookieExpires != "":
		t, err := time.Parse(time.RFC3339, cookieExpires)
		if err != nil {
			return in, fmt.Errorf("invalid --expires: %w", err)
		}
		in.Expires = &t
	case cookieMaxAge != 0:
		t := now.Add(cookieMaxAge)
		in.Expires = &t
	}
	return in, nil
}

func runCookiesSet(cmd *cobra.Command, args []string) error {
	in, err := cookieInputFromFlags(args[0], args[1], time.Now())
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.check(s.panel.SetCookie(s.app.Ctx(), in)); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), s.app.Renderer.RenderSuccess(fmt.Sprintf("cookie %s saved", in.Name)))
	return nil
}

func runCookiesRm(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.check(s.panel.DeleteCookie(s.app.Ctx(), args[0], cookieDomain, cookiePath)); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), s.app.Renderer.RenderSuccess(fmt.Sprintf("cookie %s deleted", args[0])))
	return nil
}

func storageType(arg string) (entity.PropertyType, error) {
	t, err := entity.ParsePropertyType(arg)
	if err != nil {
		return "", err
	}
	if !t.IsStorage() {
		return "", fmt.Errorf("%q is not a storage type (want local or session)", arg)
	}
	return t, nil
}

func runStorageSet(cmd *cobra.Command, args []string) error {
	t, err := storageType(args[0])
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.check(s.panel.SetStorageItem(s.app.Ctx(), t, args[1], args[2])); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), s.app.Renderer.RenderSuccess(fmt.Sprintf("%s %s saved", t.Label(), args[1])))
	return nil
}

func runStorageRm(cmd *cobra.Command, args []string) error {
	t, err := storageType(args[0])
	if err != nil {
		return err
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.check(s.panel.RemoveStorageItem(s.app.Ctx(), t, args[1])); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), s.app.Renderer.RenderSuccess(fmt.Sprintf("%s %s removed", t.Label(), args[1])))
	return nil
}
