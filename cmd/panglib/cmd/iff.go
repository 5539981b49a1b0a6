package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/pangya-tools/panglib/iff"
	"github.com/pangya-tools/panglib/locale"
	"github.com/pangya-tools/panglib/record"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// iffCmd groups the item table commands
var iffCmd = &cobra.Command{
	Use:   "iff",
	Short: "Decode fixed-record item tables",
}

var iffBallCmd = &cobra.Command{
	Use:   "ball <Ball.iff>",
	Short: "Print the records of a Ball item table as YAML",
	Long: `Print the header and records of a Ball item table as YAML. Item
tables carry no locale in their name, so strings are decoded as UTF-8
unless --encoding is given.

Example:
  panglib iff ball data/Ball.iff --encoding euc-kr`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := envFrom(cmd)

		codec, err := e.codecFor(args[0])
		if err != nil {
			return err
		}

		f, err := dumpIFF(cmd.OutOrStdout(), args[0], iff.BallSchema, codec)
		if err != nil {
			return err
		}
		e.log.Debugf("decoded %d %s records (binding %d, version %d)",
			len(f.Records), f.Schema().Name(), f.Header.BindingID, f.Header.Version)

		return nil
	},
}

func dumpIFF(w io.Writer, path string, schema *record.Schema, codec *locale.Codec) (*iff.File, error) {
	f, err := iff.Load(path, schema, codec)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}

	records := &yaml.Node{Kind: yaml.SequenceNode}
	for _, r := range f.Records {
		records.Content = append(records.Content, recordNode(r))
	}

	doc := mappingNode(
		"binding_id", scalarNode(strconv.Itoa(int(f.Header.BindingID)), "!!int"),
		"version", scalarNode(strconv.FormatUint(uint64(f.Header.Version), 10), "!!int"),
		"schema", scalarNode(f.Schema().Name(), "!!str"),
	)
	doc.Content = append(doc.Content, scalarNode("records", "!!str"), records)

	return f, writeYAML(w, doc)
}

// recordNode renders r as a YAML mapping in field order.
func recordNode(r *record.Record) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for name, v := range r.All() {
		n.Content = append(n.Content, scalarNode(name, "!!str"), valueNode(v))
	}

	return n
}

func valueNode(v any) *yaml.Node {
	switch v := v.(type) {
	case *record.Record:
		return recordNode(v)
	case string:
		return scalarNode(v, "!!str")
	case []byte:
		return scalarNode(hex.EncodeToString(v), "!!str")
	case float32:
		return scalarNode(strconv.FormatFloat(float64(v), 'g', -1, 32), "!!float")
	default:
		return scalarNode(fmt.Sprint(v), "!!int")
	}
}

func scalarNode(value, tag string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func mappingNode(kv ...any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Content = append(n.Content, scalarNode(kv[i].(string), "!!str"), kv[i+1].(*yaml.Node))
	}

	return n
}

func init() {
	iffCmd.AddCommand(iffBallCmd)
	rootCmd.AddCommand(iffCmd)
}
