// Package pkguid provides helpers for generating unique identifiers.
//
//   - UUID strings for request correlation.
//   - Snowflake IDs for live stream events.
//   - Prefixed base-36 IDs ("txn_k3j9...") for mock payment objects, drawn
//     from a seedable random source.
package pkguid
