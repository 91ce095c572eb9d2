// Package mocks provides testify mocks for the port interfaces.
package mocks

import (
	"image"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/jxlview/internal/domain"
	"github.com/bnema/jxlview/internal/port"
)

type ConverterMock struct {
	mock.Mock
}

func NewConverterMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ConverterMock {
	m := &ConverterMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ConverterMock) Available() error {
	args := m.Called()
	return args.Error(0)
}

func (m *ConverterMock) EncodeToJXL(inputPath string, quality int) domain.ConversionResult {
	args := m.Called(inputPath, quality)
	return args.Get(0).(domain.ConversionResult)
}

func (m *ConverterMock) DecodeToTemp(jxlPath string) domain.DecodeResult {
	args := m.Called(jxlPath)
	return args.Get(0).(domain.DecodeResult)
}

type ImageLoaderMock struct {
	mock.Mock
}

func NewImageLoaderMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ImageLoaderMock {
	m := &ImageLoaderMock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ImageLoaderMock) Load(path string) (image.Image, error) {
	args := m.Called(path)
	img, _ := args.Get(0).(image.Image)
	return img, args.Error(1)
}

var (
	_ port.Converter   = (*ConverterMock)(nil)
	_ port.ImageLoader = (*ImageLoaderMock)(nil)
)
