// Package api is the internal representation of the tonlib_api schema in
// internal/schema/testdata/tonlib.yaml, written the way a schema compiler
// lays it out: one struct per constructor and function, one interface per
// sum type.
package api

import "github.com/okra-platform/tlbind/pkg/tlrt"

// KeyStoreType is implemented by every KeyStoreType constructor
type KeyStoreType interface {
	tlrt.Object
	isKeyStoreType()
}

type AccountAddress struct {
	AccountAddress string
}

type KeyStoreTypeDirectory struct {
	Directory string
}

type KeyStoreTypeInMemory struct{}

type InternalTransactionId struct {
	Lt   int64
	Hash []byte
}

type FullAccountState struct {
	Address           *AccountAddress
	Balance           int64
	LastTransactionId *InternalTransactionId
	SyncUtime         int64
	FrozenHash        [32]byte
	Seqnos            []int32
	KeyStoreType      KeyStoreType
	IsActive          bool
	Extra             [][][]byte
}

// GetAccountState requests the state of an account
type GetAccountState struct {
	AccountAddress *AccountAddress
}

// Init starts the client with engine-specific options
type Init struct {
	Options tlrt.Object
}

func (*AccountAddress) ConstructorID() int32        { return 0x755613c2 }
func (*KeyStoreTypeDirectory) ConstructorID() int32 { return -378990038 }
func (*KeyStoreTypeInMemory) ConstructorID() int32  { return -1940211240 }
func (*InternalTransactionId) ConstructorID() int32 { return -1061659606 }
func (*FullAccountState) ConstructorID() int32      { return 0x5fcb0ab5 }
func (*GetAccountState) ConstructorID() int32       { return 0x6ee9d4a7 }
func (*Init) ConstructorID() int32                  { return 0x47dd0d3a }

func (*KeyStoreTypeDirectory) isKeyStoreType() {}
func (*KeyStoreTypeInMemory) isKeyStoreType()  {}
