package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/emberhollow/realmd/internal/entities"
	"github.com/emberhollow/realmd/internal/errors"
)

type InventoryTestSuite struct {
	suite.Suite
	inv entities.Inventory
}

func (s *InventoryTestSuite) SetupTest() {
	s.inv = entities.NewInventory()
}

func TestInventorySuite(t *testing.T) {
	suite.Run(t, new(InventoryTestSuite))
}

func (s *InventoryTestSuite) TestAddOneStacksBeforeNewSlot() {
	s.inv[3] = &entities.Slot{Type: "wood", Quantity: 5}

	idx, err := s.inv.AddOne("wood")
	s.Require().NoError(err)
	s.Equal(3, idx)
	s.Equal(6, s.inv[3].Quantity)
	s.Nil(s.inv[0])
}

func (s *InventoryTestSuite) TestAddOneSkipsFullStack() {
	s.inv[0] = &entities.Slot{Type: "wood", Quantity: entities.MaxStackSize}

	idx, err := s.inv.AddOne("wood")
	s.Require().NoError(err)
	s.Equal(1, idx)
	s.Equal(entities.MaxStackSize, s.inv[0].Quantity)
	s.Equal(1, s.inv[1].Quantity)
}

func (s *InventoryTestSuite) TestAddOneUsesFirstEmptySlot() {
	s.inv[0] = &entities.Slot{Type: "stone", Quantity: 2}

	idx, err := s.inv.AddOne("herb")
	s.Require().NoError(err)
	s.Equal(1, idx)
	s.Equal(entities.ItemType("herb"), s.inv[1].Type)
}

func (s *InventoryTestSuite) TestAddOneFull() {
	for i := range s.inv {
		s.inv[i] = &entities.Slot{Type: "stone", Quantity: entities.MaxStackSize}
	}

	_, err := s.inv.AddOne("stone")
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.Equal(entities.InventorySize*entities.MaxStackSize, s.inv.Total())
}

func (s *InventoryTestSuite) TestRemoveOneDecrements() {
	s.inv[2] = &entities.Slot{Type: "iron", Quantity: 3}

	itemType, err := s.inv.RemoveOne(2)
	s.Require().NoError(err)
	s.Equal(entities.ItemType("iron"), itemType)
	s.Equal(2, s.inv[2].Quantity)
}

func (s *InventoryTestSuite) TestRemoveOneClearsSlotAtZero() {
	s.inv[2] = &entities.Slot{Type: "iron", Quantity: 1}

	_, err := s.inv.RemoveOne(2)
	s.Require().NoError(err)
	s.Nil(s.inv[2])
}

func (s *InventoryTestSuite) TestRemoveOneErrors() {
	_, err := s.inv.RemoveOne(-1)
	s.True(errors.IsOutOfRange(err))

	_, err = s.inv.RemoveOne(entities.InventorySize)
	s.True(errors.IsOutOfRange(err))

	_, err = s.inv.RemoveOne(0)
	s.True(errors.IsInvalidArgument(err))
}

func (s *InventoryTestSuite) TestMoveOrStackIntoEmpty() {
	s.inv[0] = &entities.Slot{Type: "wood", Quantity: 7}

	s.Require().NoError(s.inv.MoveOrStack(0, 5))
	s.Nil(s.inv[0])
	s.Equal(7, s.inv[5].Quantity)
	s.Equal(entities.ItemType("wood"), s.inv[5].Type)
}

func (s *InventoryTestSuite) TestMoveOrStackPartialTransfer() {
	// Moving 10 wood onto 60 wood caps the destination at 64 and
	// leaves 6 behind.
	s.inv[0] = &entities.Slot{Type: "wood", Quantity: 10}
	s.inv[1] = &entities.Slot{Type: "wood", Quantity: 60}

	before := s.inv.Total()
	s.Require().NoError(s.inv.MoveOrStack(0, 1))

	s.Equal(entities.MaxStackSize, s.inv[1].Quantity)
	s.Require().NotNil(s.inv[0])
	s.Equal(6, s.inv[0].Quantity)
	s.Equal(before, s.inv.Total())
}

func (s *InventoryTestSuite) TestMoveOrStackFullTransferClearsSource() {
	s.inv[0] = &entities.Slot{Type: "herb", Quantity: 4}
	s.inv[1] = &entities.Slot{Type: "herb", Quantity: 10}

	s.Require().NoError(s.inv.MoveOrStack(0, 1))
	s.Nil(s.inv[0])
	s.Equal(14, s.inv[1].Quantity)
}

func (s *InventoryTestSuite) TestMoveOrStackSwapsDifferentTypes() {
	s.inv[0] = &entities.Slot{Type: "iron", Quantity: entities.MaxStackSize}
	s.inv[1] = &entities.Slot{Type: "stone", Quantity: 12}

	s.Require().NoError(s.inv.MoveOrStack(0, 1))
	s.Equal(entities.ItemType("stone"), s.inv[0].Type)
	s.Equal(12, s.inv[0].Quantity)
	s.Equal(entities.ItemType("iron"), s.inv[1].Type)
	s.Equal(entities.MaxStackSize, s.inv[1].Quantity)
}

func (s *InventoryTestSuite) TestMoveOrStackSwapsSameTypeWhenDestFull() {
	s.inv[0] = &entities.Slot{Type: "wood", Quantity: 9}
	s.inv[1] = &entities.Slot{Type: "wood", Quantity: entities.MaxStackSize}

	s.Require().NoError(s.inv.MoveOrStack(0, 1))
	s.Equal(entities.MaxStackSize, s.inv[0].Quantity)
	s.Equal(9, s.inv[1].Quantity)
}

func (s *InventoryTestSuite) TestMoveOrStackEmptySourceIsNoOp() {
	s.inv[1] = &entities.Slot{Type: "wood", Quantity: 9}

	s.Require().NoError(s.inv.MoveOrStack(0, 1))
	s.Nil(s.inv[0])
	s.Equal(9, s.inv[1].Quantity)
}

func (s *InventoryTestSuite) TestMoveOrStackValidation() {
	err := s.inv.MoveOrStack(0, 0)
	s.True(errors.IsInvalidArgument(err))

	err = s.inv.MoveOrStack(-1, 0)
	s.True(errors.IsOutOfRange(err))

	err = s.inv.MoveOrStack(0, entities.InventorySize)
	s.True(errors.IsOutOfRange(err))
}

func (s *InventoryTestSuite) TestMoveOrStackConservesTotal() {
	s.inv[0] = &entities.Slot{Type: "wood", Quantity: 30}
	s.inv[4] = &entities.Slot{Type: "wood", Quantity: 50}
	s.inv[7] = &entities.Slot{Type: "stone", Quantity: 15}

	pairs := [][2]int{{0, 4}, {4, 7}, {7, 2}, {2, 0}, {0, 7}}
	for _, pair := range pairs {
		before := s.inv.Total()
		s.Require().NoError(s.inv.MoveOrStack(pair[0], pair[1]))
		s.Equal(before, s.inv.Total(), "total changed for move %v", pair)
	}
}

func (s *InventoryTestSuite) TestClone() {
	s.inv[0] = &entities.Slot{Type: "wood", Quantity: 5}

	clone := s.inv.Clone()
	clone[0].Quantity = 99
	clone[1] = &entities.Slot{Type: "herb", Quantity: 1}

	s.Equal(5, s.inv[0].Quantity)
	s.Nil(s.inv[1])
	s.Len(clone, entities.InventorySize)
}
