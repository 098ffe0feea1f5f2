// Package keystore persists named key pairs in a single JSON file.
//
// The store file maps key pair names to their public key and, optionally,
// their encrypted secret key:
//
//	{
//	  "keys": {
//	    "alice": {
//	      "public_key": [12, 200, ...],
//	      "public_key_string": "DMj...",
//	      "encrypted_secret_key": {
//	        "salt": [...],
//	        "nonce": [...],
//	        "encrypted_data": [...]
//	      }
//	    }
//	  }
//	}
//
// A missing file is an empty store. Saves rewrite the whole file through a
// temporary file in the same directory. There is no locking between
// processes: concurrent writers race and the last one wins.
//
// # Fingerprints
//
// Fingerprint hashes the compact JSON encoding of a store with SHA-256.
// encoding/json sorts map keys, so equal stores always produce equal
// fingerprints. The session password cache compares fingerprints to notice
// that the file changed underneath it.
package keystore
