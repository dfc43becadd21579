package memory

import (
	"testing"

	"github.com/golang/mock/gomock"
)

func TestObserverNotifiedOnWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := NewMockMutationObserver(ctrl)
	obs.EXPECT().OnWrite(Address(0), Address(2))

	m := New(WithObserver(obs))
	m.Write(0, []byte("AB"))
}

func TestObserverNotifiedOnDeleteAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := NewMockMutationObserver(ctrl)
	gomock.InOrder(
		obs.EXPECT().OnClear(Address(1), Address(2)),
		obs.EXPECT().OnDelete(Address(1), Address(2)),
	)

	m := FromBytes([]byte("ABCD"), 0, WithObserver(obs))
	m.Clear(1, 2)
	m.Delete(1, 2)
}

func TestObserverNotifiedOnShift(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := NewMockMutationObserver(ctrl)
	obs.EXPECT().OnShift(Address(3))

	m := FromBytes([]byte("AB"), 0, WithObserver(obs))
	m.Shift(3)
}

func TestNoObserverIsSafe(t *testing.T) {
	m := New()
	m.Write(0, []byte("AB"))
	m.Delete(0, 1)
	m.Shift(1)
}
