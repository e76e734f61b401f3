// Package commands defines the roomkey CLI and wires dependencies for subcommands.
//
// Commands
//
//   - sum          Sum the sector ids of every valid room
//   - find         Print the sector of the first valid room whose name matches
//   - list         Show every record with its validity and decrypted name
//   - decrypt      Decrypt a single identifier
//   - checksum     Compare a computed checksum with the stored one
//   - fingerprint  Print the digest of the input
//
// # Implementation
//
// The root command loads the config, builds a zap logger and an app.Wire
// before any subcommand runs. Input is read from --input, or stdin when the
// path is "-".
package commands
