package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestT_KnownMessages(t *testing.T) {
	require.Equal(t, "Select", T("footer_select"))
	require.Equal(t, "Confirm", T("footer_confirm"))
	require.Equal(t, "Back", T("footer_back"))
}

func TestT_UnknownMessageFallsBackToID(t *testing.T) {
	require.Equal(t, "no_such_message", T("no_such_message"))
}
