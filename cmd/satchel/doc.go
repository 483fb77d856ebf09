// Command satchel manages a local vault of audio recordings and imported
// files: capture and import, listing with reconciliation against the vault,
// search, rename, delete, and configuration utilities.
package main
