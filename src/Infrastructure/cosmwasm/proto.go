package cosmwasm

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// gRPC query paths served through abci_query.
const (
	smartQueryPath   = "/cosmwasm.wasm.v1.Query/SmartContractState"
	balanceQueryPath = "/cosmos.bank.v1beta1.Query/Balance"
)

// QuerySmartContractStateRequest{address = 1, query_data = 2}
func encodeSmartQuery(contract string, query []byte) []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, contract)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, query)
	return b
}

// QuerySmartContractStateResponse{data = 1}
func decodeSmartResponse(b []byte) ([]byte, error) {
	return bytesField(b, 1)
}

// QueryBalanceRequest{address = 1, denom = 2}
func encodeBalanceQuery(address, denom string) []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, address)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, denom)
	return b
}

// QueryBalanceResponse{balance = 1 Coin{denom = 1, amount = 2}}. No coin means zero.
func decodeBalanceResponse(b []byte) (string, error) {
	coin, err := bytesField(b, 1)
	if err != nil {
		return "", err
	}
	amount, err := bytesField(coin, 2)
	if err != nil {
		return "", err
	}
	if len(amount) == 0 {
		return "0", nil
	}
	return string(amount), nil
}

// bytesField returns the last occurrence of a length-delimited field, or nil when absent.
func bytesField(b []byte, field protowire.Number) ([]byte, error) {
	var out []byte
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("protobuf tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		if num == field && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("protobuf field %d: %w", field, protowire.ParseError(n))
			}
			out = v
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return nil, fmt.Errorf("protobuf field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return out, nil
}
