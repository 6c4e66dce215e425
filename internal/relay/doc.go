// Package relay carries the relay's HTTP surface: the server handlers that
// front the core services and the typed client the CLI uses to reach them.
//
// HTTP API
//
//	POST /api/register             {hash}
//	    Register or refresh a participant; returns the journalist key.
//
//	POST /api/register-journalist  {publicKey, secret}
//	    Claim the journalist key, or replace it with the shared secret.
//
//	POST /api/message              {from, to?, encryptedData, ...}
//	    Store an opaque encrypted message.
//
//	POST /api/chunk                {from, chunkIndex, totalChunks, chunkData, fileName, ...}
//	    Submit one file chunk; reports received/total progress.
//
//	GET  /api/messages?userType=&hash=
//	    List messages: every message for the journalist, own messages for a user.
//
//	POST /api/nuke                 {hash}
//	    Purge a sender: messages, participant record and in-flight uploads.
//
//	GET  /api/health
//	    Liveness probe.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Payloads are opaque: the relay never decrypts anything.
//   - Every route passes admission control keyed by client address; 429
//     carries retry-after-window semantics.
//   - A lightweight access log records method, path, remote, status and
//     duration for each request.
package relay
