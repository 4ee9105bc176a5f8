package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/txgate/txgate/internal/logger"
	"github.com/txgate/txgate/internal/mock"
	"github.com/txgate/txgate/internal/txn"
	"github.com/txgate/txgate/models"
	"go.uber.org/mock/gomock"
)

func testXid() models.Xid {
	return models.Xid{FormatID: 1, GlobalTransactionID: []byte{1, 2, 3}, BranchQualifier: []byte{4}}
}

func TestResolver_ReturnsDirectoryHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := mock.NewMockDirectory(ctrl)
	mockControl := mock.NewMockControl(ctrl)
	ctx := context.Background()
	xid := testXid()

	mockDirectory.EXPECT().
		FindOrImport(ctx, xid).
		Return(txn.ImportResult{Control: mockControl, New: true}, nil)

	resolver := NewResolver(mockDirectory, logger.Nop())
	control, err := resolver.Resolve(ctx, xid)

	require.NoError(t, err)
	assert.Same(t, mockControl, control)
}

func TestResolver_ImportFlagIsIgnored(t *testing.T) {
	// the gateway needs only the handle, not whether it was newly imported
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := mock.NewMockDirectory(ctrl)
	mockControl := mock.NewMockControl(ctrl)
	ctx := context.Background()

	mockDirectory.EXPECT().
		FindOrImport(ctx, gomock.Any()).
		Return(txn.ImportResult{Control: mockControl, New: false}, nil)

	resolver := NewResolver(mockDirectory, logger.Nop())
	control, err := resolver.Resolve(ctx, testXid())

	require.NoError(t, err)
	assert.Same(t, mockControl, control)
}

func TestResolver_DirectoryFailureWrapsImportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDirectory := mock.NewMockDirectory(ctrl)
	ctx := context.Background()
	directoryErr := errors.New("manager unreachable")

	mockDirectory.EXPECT().
		FindOrImport(ctx, gomock.Any()).
		Return(txn.ImportResult{}, directoryErr)

	resolver := NewResolver(mockDirectory, logger.Nop())
	control, err := resolver.Resolve(ctx, testXid())

	assert.Nil(t, control)
	assert.ErrorIs(t, err, ErrTransactionImport)
	assert.ErrorIs(t, err, directoryErr)
}
