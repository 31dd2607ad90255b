package models

import "encoding/json"

// FrameRequest represents a signed frame action posted by a frame client
type FrameRequest struct {
	UntrustedData *FrameActionData `json:"untrustedData" binding:"required"`
	TrustedData   *FrameTrustedData `json:"trustedData" binding:"required"`
}

// FrameActionData carries the action payload as reported by the client
type FrameActionData struct {
	FID           int64        `json:"fid"`
	URL           string       `json:"url"`
	MessageHash   string       `json:"messageHash"`
	Timestamp     int64        `json:"timestamp"`
	Network       string       `json:"network"`
	ButtonIndex   int          `json:"buttonIndex"`
	InputText     string       `json:"inputText"`
	State         string       `json:"state"`
	WalletAddress string       `json:"address"`
	CastID        *FrameCastID `json:"castId"`
}

// FrameCastID identifies the cast the frame was rendered from
type FrameCastID struct {
	FID  int64  `json:"fid"`
	Hash string `json:"hash"`
}

// FrameTrustedData carries the signed message bytes
type FrameTrustedData struct {
	MessageBytes string `json:"messageBytes"`
}

// FrameTransactionResponse is the transaction a frame client should submit
type FrameTransactionResponse struct {
	ChainID string                 `json:"chainId"`
	Method  string                 `json:"method"`
	Params  FrameTransactionParams `json:"params"`
}

// FrameTransactionParams holds the calldata for the wallet
type FrameTransactionParams struct {
	ABI  json.RawMessage `json:"abi"`
	To   string          `json:"to"`
	Data string          `json:"data"`
}
