// Package crypto holds the client-side primitives. The relay itself never
// touches any of this: payloads cross the wire as opaque strings.
//
// Contents
//
//   - Anonymous identity generation: a random 32-char hex hash plus a
//     Curve25519 pair for receiving sealed replies (NewIdentity)
//   - Sealed-box encryption of payloads to a recipient key (Seal, Open)
//   - Passphrase encryption of the local identity file using Argon2id and
//     ChaCha20-Poly1305 (EncryptSecret, DecryptSecret)
//   - Best-effort wiping of sensitive byte slices (Zero)
package crypto
