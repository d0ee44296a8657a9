// Package pinecone implements index.VectorStore against Pinecone serverless
// indexes using the official Go SDK. Connect provisions the index on first
// use (dimension 1536, cosine, aws/us-west-2).
package pinecone
