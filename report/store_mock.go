// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package report is a generated GoMock package.
package report

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockStore is a mock of Store interface.
type MockStore struct {
	ctrl     *gomock.Controller
	recorder *MockStoreMockRecorder
	isgomock struct{}
}

// MockStoreMockRecorder is the mock recorder for MockStore.
type MockStoreMockRecorder struct {
	mock *MockStore
}

// NewMockStore creates a new mock instance.
func NewMockStore(ctrl *gomock.Controller) *MockStore {
	mock := &MockStore{ctrl: ctrl}
	mock.recorder = &MockStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStore) EXPECT() *MockStoreMockRecorder {
	return m.recorder
}

// AddHistogram mocks base method.
func (m *MockStore) AddHistogram(runID int64, bins []Bin) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddHistogram", runID, bins)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddHistogram indicates an expected call of AddHistogram.
func (mr *MockStoreMockRecorder) AddHistogram(runID, bins any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddHistogram", reflect.TypeOf((*MockStore)(nil).AddHistogram), runID, bins)
}

// AddRun mocks base method.
func (m *MockStore) AddRun(run Run) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddRun", run)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddRun indicates an expected call of AddRun.
func (mr *MockStoreMockRecorder) AddRun(run any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddRun", reflect.TypeOf((*MockStore)(nil).AddRun), run)
}

// Close mocks base method.
func (m *MockStore) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockStoreMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockStore)(nil).Close))
}

// Histogram mocks base method.
func (m *MockStore) Histogram(runID int64) ([]Bin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Histogram", runID)
	ret0, _ := ret[0].([]Bin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Histogram indicates an expected call of Histogram.
func (mr *MockStoreMockRecorder) Histogram(runID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Histogram", reflect.TypeOf((*MockStore)(nil).Histogram), runID)
}

// Runs mocks base method.
func (m *MockStore) Runs() ([]Run, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Runs")
	ret0, _ := ret[0].([]Run)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Runs indicates an expected call of Runs.
func (mr *MockStoreMockRecorder) Runs() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Runs", reflect.TypeOf((*MockStore)(nil).Runs))
}
