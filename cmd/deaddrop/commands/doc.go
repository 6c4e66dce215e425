// Package commands defines the deaddrop CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init        Create the local anonymous identity
//   - register    Announce your hash to the relay
//   - journalist  Claim (or rotate) the journalist key
//   - send        Seal a message to the journalist and send it
//   - send-file   Seal a file and upload it in chunks
//   - reply       Seal a reply to a user's published key (journalist)
//   - recv        Fetch messages and open what your keys can open
//   - nuke        Wipe every trace of your hash from the relay
//   - health      Probe the relay
//
// # Implementation
//
// The root command builds the identity store and relay client before any
// subcommand runs; all encryption happens here, never on the relay.
package commands
