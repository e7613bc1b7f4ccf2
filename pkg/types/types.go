// Package types defines the JSON record shapes returned by the Blockfrost
// API endpoints implemented by this library.
//
// Optional fields are pointers with omitempty so that a record with absent
// optional fields round-trips through JSON unchanged.
package types

// Root is the response of the API root endpoint.
type Root struct {
	// URL of the service.
	URL string `json:"url"`
	// Version of the deployed backend.
	Version string `json:"version"`
}

// Health reports whether the backend is healthy.
type Health struct {
	IsHealthy bool `json:"is_healthy"`
}

// HealthClock is the current backend time.
type HealthClock struct {
	// ServerTime is UNIX time in milliseconds.
	ServerTime int64 `json:"server_time"`
}

// Block is the content of a Cardano block.
type Block struct {
	// Block creation time in UNIX time.
	Time int64 `json:"time"`
	// Block number.
	Height *int64 `json:"height,omitempty"`
	// Hash of the block.
	Hash string `json:"hash"`
	// Slot number.
	Slot *int64 `json:"slot,omitempty"`
	// Epoch number.
	Epoch *int64 `json:"epoch,omitempty"`
	// Slot within the epoch.
	EpochSlot *int64 `json:"epoch_slot,omitempty"`
	// Bech32 ID of the slot leader, or a block description when there is no
	// slot leader.
	SlotLeader string `json:"slot_leader"`
	// Block size in bytes.
	Size int64 `json:"size"`
	// Number of transactions in the block.
	TxCount int64 `json:"tx_count"`
	// Total output within the block in Lovelaces.
	Output *string `json:"output,omitempty"`
	// Total fees within the block in Lovelaces.
	Fees *string `json:"fees,omitempty"`
	// VRF key of the block.
	BlockVRF *string `json:"block_vrf,omitempty"`
	// Hash of the previous block.
	PreviousBlock *string `json:"previous_block,omitempty"`
	// Hash of the next block.
	NextBlock *string `json:"next_block,omitempty"`
	// Number of block confirmations.
	Confirmations int64 `json:"confirmations"`
}

// AffectedAddress is an address affected by the transactions of a block.
type AffectedAddress struct {
	// Bech32 encoded address.
	Address string `json:"address"`
	// Transactions of the block that affected the address.
	Transactions []TxHash `json:"transactions"`
}

// TxHash is a transaction hash wrapper.
type TxHash struct {
	TxHash string `json:"tx_hash"`
}
