package cmd

import (
	"io"
	"os"

	"github.com/pangya-tools/panglib/dat"
	"github.com/pangya-tools/panglib/locale"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// datCmd groups the string table commands
var datCmd = &cobra.Command{
	Use:   "dat",
	Short: "Read and write localized string tables",
}

var datDumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print the entries of a string table as YAML",
	Long: `Print the entries of a string table as a YAML list.

Example:
  panglib dat dump data/korea.dat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := envFrom(cmd)
		strict, _ := cmd.Flags().GetBool("strict")

		codec, err := e.codecFor(args[0])
		if err != nil {
			return err
		}
		e.log.Debugf("reading %s as %s", args[0], codec)

		return dumpDAT(cmd.OutOrStdout(), args[0], codec, strict)
	},
}

var datBuildCmd = &cobra.Command{
	Use:   "build <entries.yaml> <out.dat>",
	Short: "Build a string table from a YAML list",
	Long: `Build a string table from a YAML list of strings. The output
encoding follows the output file name.

Example:
  panglib dat build japan.yaml out/japan.dat`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := envFrom(cmd)

		codec, err := e.codecFor(args[1])
		if err != nil {
			return err
		}

		n, err := buildDAT(args[0], args[1], codec)
		if err != nil {
			return err
		}
		e.log.Infof("wrote %d entries to %s (%s)", n, args[1], codec)

		return nil
	},
}

var datConvertCmd = &cobra.Command{
	Use:   "convert <in.dat> <out.dat>",
	Short: "Re-encode a string table",
	Long: `Re-encode a string table. The input and output encodings follow
their file names unless --from or --to is given.

Example:
  panglib dat convert korea.dat korea_utf8.dat --to utf-8`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := envFrom(cmd)

		from, err := flagOrFileCodec(cmd, e, "from", args[0])
		if err != nil {
			return err
		}
		to, err := flagOrFileCodec(cmd, e, "to", args[1])
		if err != nil {
			return err
		}

		n, err := convertDAT(args[0], args[1], from, to)
		if err != nil {
			return err
		}
		e.log.Infof("converted %d entries from %s to %s", n, from, to)

		return nil
	},
}

func flagOrFileCodec(cmd *cobra.Command, e *env, flag, path string) (*locale.Codec, error) {
	name, _ := cmd.Flags().GetString(flag)
	if name == "" {
		return e.codecFor(path)
	}

	cp, err := locale.ParseCodePage(name)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", flag)
	}
	codec, err := locale.ForCodePage(cp)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", flag)
	}

	return codec, nil
}

func dumpDAT(w io.Writer, path string, codec *locale.Codec, strict bool) error {
	var opts []dat.ReadOption
	if strict {
		opts = append(opts, dat.WithStrictTerminator())
	}

	f, err := dat.LoadWithCodec(path, codec, opts...)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", path)
	}

	entries := f.Entries
	if entries == nil {
		entries = []string{}
	}

	return writeYAML(w, entries)
}

func buildDAT(src, dst string, codec *locale.Codec) (int, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return 0, errors.Wrapf(err, "could not read %s", src)
	}

	var entries []string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return 0, errors.Wrapf(err, "%s is not a YAML list of strings", src)
	}

	f := dat.New(codec)
	f.Append(entries...)
	if err := f.Save(dst); err != nil {
		return 0, errors.Wrapf(err, "could not write %s", dst)
	}

	return f.Len(), nil
}

func convertDAT(src, dst string, from, to *locale.Codec) (int, error) {
	f, err := dat.LoadWithCodec(src, from)
	if err != nil {
		return 0, errors.Wrapf(err, "could not read %s", src)
	}

	f.SetEncoding(to)
	if err := f.Save(dst); err != nil {
		return 0, errors.Wrapf(err, "could not write %s", dst)
	}

	return f.Len(), nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "could not encode YAML")
	}

	return errors.Wrap(enc.Close(), "could not encode YAML")
}

func init() {
	datDumpCmd.Flags().Bool("strict", false, "Fail on a trailing entry without a terminator")
	datConvertCmd.Flags().String("from", "", "Input code page, overriding the file name")
	datConvertCmd.Flags().String("to", "", "Output code page, overriding the file name")

	datCmd.AddCommand(datDumpCmd, datBuildCmd, datConvertCmd)
	rootCmd.AddCommand(datCmd)
}
