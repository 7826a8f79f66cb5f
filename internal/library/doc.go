// Package library manages the local instruction library under
// ~/.templatekit/. It owns the on-disk layout, the YAML index that records
// installed instructions with their checksums, and the install, update, and
// remove operations. Checksums from the manifest parser drive change
// detection: unchanged content is never copied twice.
package library
