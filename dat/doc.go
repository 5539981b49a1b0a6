// Package dat reads and writes the game's flat string tables.
//
// A DAT file is nothing but encoded strings, each followed by a single NUL
// byte:
//
//	<entry 0 bytes> 00 <entry 1 bytes> 00 ... <entry n bytes> 00
//
// There is no header, count or footer, and the text encoding is not
// recorded in the file. Load derives it from the file name through
// locale.Resolve ("korea.dat" is EUC-KR, "japan.dat" Shift-JIS, and so on);
// tables built in memory or with misleading names take an explicit codec.
//
// # Unterminated entries
//
// Bytes after the final NUL are discarded: the legacy reader only emits an
// entry when it sees its terminator, and existing tools depend on that. Pass
// WithStrictTerminator to reject such input with errs.ErrDecode instead.
//
// # Usage
//
//	table, err := dat.Load("data/korea.dat")
//	if err != nil {
//	    return err
//	}
//	table.Entries[12] = "새 이름"
//	if err := table.Save("out/korea.dat"); err != nil {
//	    return err
//	}
package dat
