// Package proto holds the code protoc generates from
// api/infrakeeper/v1/inventory.proto. Do not edit the *.pb.go files by hand.
package proto

//go:generate protoc -I ../../api --go_out=../.. --go_opt=module=github.com/dmitrijs2005/infrakeeper --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/infrakeeper infrakeeper/v1/inventory.proto
