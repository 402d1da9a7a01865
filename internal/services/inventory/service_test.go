package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/szabolcsj/weblabor/internal/model"
	"github.com/szabolcsj/weblabor/internal/storage/memory"
	"github.com/szabolcsj/weblabor/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestCreateProcessor() {
	p, err := s.service.CreateProcessor(s.ctx, "Intel", "Core i5-12400")
	s.Require().NoError(err)
	s.NotZero(p.ID)
	s.Equal("Intel", p.Brand)
}

func (s *ServiceSuite) TestCreateProcessorTrims() {
	p, err := s.service.CreateProcessor(s.ctx, "  Intel ", " Core i5 ")
	s.Require().NoError(err)
	s.Equal("Intel", p.Brand)
	s.Equal("Core i5", p.Model)
}

func (s *ServiceSuite) TestCreateProcessorMissingFields() {
	_, err := s.service.CreateProcessor(s.ctx, "", "Core i5")
	s.ErrorIs(err, ErrMissingFields)

	_, err = s.service.CreateProcessor(s.ctx, "Intel", "   ")
	s.ErrorIs(err, ErrMissingFields)
}

func (s *ServiceSuite) TestUpdateProcessor() {
	p, err := s.service.CreateProcessor(s.ctx, "Intel", "Core i5")
	s.Require().NoError(err)

	updated, err := s.service.UpdateProcessor(s.ctx, p.ID, "AMD", "Ryzen 5")
	s.Require().NoError(err)
	s.Equal("AMD", updated.Brand)

	got, err := s.service.GetProcessor(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Ryzen 5", got.Model)
}

func (s *ServiceSuite) TestUpdateProcessorNotFound() {
	_, err := s.service.UpdateProcessor(s.ctx, 9999, "AMD", "Ryzen 5")
	s.ErrorIs(err, model.ErrProcessorNotFound)
}

func (s *ServiceSuite) TestUpdateProcessorMissingFields() {
	p, err := s.service.CreateProcessor(s.ctx, "Intel", "Core i5")
	s.Require().NoError(err)

	_, err = s.service.UpdateProcessor(s.ctx, p.ID, "", "")
	s.ErrorIs(err, ErrMissingFields)
}

func (s *ServiceSuite) TestDeleteProcessor() {
	p, err := s.service.CreateProcessor(s.ctx, "Intel", "Core i5")
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteProcessor(s.ctx, p.ID))

	_, err = s.service.GetProcessor(s.ctx, p.ID)
	s.ErrorIs(err, model.ErrProcessorNotFound)
}

func (s *ServiceSuite) TestDeleteProcessorInUse() {
	p, err := s.service.CreateProcessor(s.ctx, "Intel", "Core i5")
	s.Require().NoError(err)

	s.storage.SeedMachine(&model.Machine{
		Brand:       "Dell",
		Model:       "OptiPlex",
		ProcessorID: p.ID,
		CPUBrand:    p.Brand,
		CPUModel:    p.Model,
		OSName:      "Windows 11",
	})

	err = s.service.DeleteProcessor(s.ctx, p.ID)
	s.ErrorIs(err, model.ErrProcessorInUse)
}

func (s *ServiceSuite) TestListMachines() {
	p, err := s.service.CreateProcessor(s.ctx, "Intel", "Core i5")
	s.Require().NoError(err)

	s.storage.SeedMachine(&model.Machine{
		Brand:       "Dell",
		Model:       "OptiPlex",
		MemoryGB:    16,
		ProcessorID: p.ID,
		CPUBrand:    p.Brand,
		CPUModel:    p.Model,
		OSName:      "Windows 11",
	})

	machines, err := s.service.ListMachines(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(machines, 1)
	s.Equal("Core i5", machines[0].CPUModel)
}

func (s *ServiceSuite) TestListProcessorsNewestFirst() {
	_, err := s.service.CreateProcessor(s.ctx, "Intel", "Core i5")
	s.Require().NoError(err)
	p2, err := s.service.CreateProcessor(s.ctx, "AMD", "Ryzen 5")
	s.Require().NoError(err)

	procs, err := s.service.ListProcessors(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(procs, 2)
	s.Equal(p2.ID, procs[0].ID)
}
